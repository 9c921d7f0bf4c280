// Package reader reads Bronze-tier raw JSON files back off disk for the
// silver-load pipeline. Every read tolerates a missing or corrupt file by
// returning nil rather than failing the caller — a partial harvest should
// still silver-load whatever it managed to fetch.
package reader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/albapepper/scoracle-ingest/internal/provider/statsapi"
)

// Reader reads raw payloads out of a root/date/gameID tree.
type Reader struct {
	root string
}

// New returns a Reader rooted at root (e.g. "raw").
func New(root string) *Reader {
	return &Reader{root: root}
}

// DateDir returns the directory holding one date's raw payloads.
func (r *Reader) DateDir(date string) string {
	return filepath.Join(r.root, date)
}

// GameDirs lists game directories for a date, skipping dotfiles and the
// manifest/quarantine siblings. Returns nil, not an error, when the date
// directory does not exist.
func (r *Reader) GameDirs(date string) ([]string, error) {
	dateDir := r.DateDir(date)
	entries, err := os.ReadDir(dateDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__") {
			continue
		}
		dirs = append(dirs, filepath.Join(dateDir, name))
	}
	return dirs, nil
}

// GameID extracts the game ID from a game directory path.
func GameID(gameDir string) string {
	return filepath.Base(gameDir)
}

func readResponse(path string) *statsapi.Response {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	resp, err := statsapi.Parse(body)
	if err != nil {
		return nil
	}
	return resp
}

// Scoreboard reads a date's scoreboard.json.
func (r *Reader) Scoreboard(date string) *statsapi.Response {
	return readResponse(filepath.Join(r.DateDir(date), "scoreboard.json"))
}

// BoxscoreSummary reads a game's boxscoresummaryv2.json.
func (r *Reader) BoxscoreSummary(gameDir string) *statsapi.Response {
	return readResponse(filepath.Join(gameDir, "boxscoresummaryv2.json"))
}

// BoxscoreTraditional reads a game's boxscoretraditionalv2.json.
func (r *Reader) BoxscoreTraditional(gameDir string) *statsapi.Response {
	return readResponse(filepath.Join(gameDir, "boxscoretraditionalv2.json"))
}

// PlayByPlay reads a game's playbyplayv2.json.
func (r *Reader) PlayByPlay(gameDir string) *statsapi.Response {
	return readResponse(filepath.Join(gameDir, "playbyplayv2.json"))
}

// ShotChart reads a game's shotchartdetail.json.
func (r *Reader) ShotChart(gameDir string) *statsapi.Response {
	return readResponse(filepath.Join(gameDir, "shotchartdetail.json"))
}

// RefSiteBoxscoreHTML reads a game's persisted reference-site boxscore
// page, if the harvester fetched one. Absence is not an error — refsite
// fetch is a supplemental, config-gated harvest step.
func (r *Reader) RefSiteBoxscoreHTML(gameDir string) (string, bool) {
	body, err := os.ReadFile(filepath.Join(gameDir, "refsite_boxscore.html"))
	if err != nil {
		return "", false
	}
	return string(body), true
}

// GamebookPDF reads a game's persisted gamebook PDF bytes, if one was
// placed in the game directory. The harvester does not name PDFs per
// game on its own (gamebook listings aren't keyed by game ID), so this
// is populated by an operator-driven download step, not automatically.
func (r *Reader) GamebookPDF(gameDir string) ([]byte, bool) {
	body, err := os.ReadFile(filepath.Join(gameDir, "gamebook.pdf"))
	if err != nil {
		return nil, false
	}
	return body, true
}

// ReadJSON reads and unmarshals an arbitrary raw JSON file into v,
// returning false (not an error) when the file is missing or invalid.
func ReadJSON(path string, v interface{}) bool {
	body, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(body, v) == nil
}
