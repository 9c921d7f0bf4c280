// Package transform implements the pure raw-row -> typed-record functions
// spec.md §4.8 names. Every function here is side-effect free; loaders and
// the orchestrator own the I/O.
package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/albapepper/scoracle-ingest/internal/datenorm"
	"github.com/albapepper/scoracle-ingest/internal/seasonutil"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
	"github.com/albapepper/scoracle-ingest/internal/teamcrosswalk"
)

var gameIDFormat = regexp.MustCompile(`^00[1-9]\d{6}$`)

var statusSynonyms = map[string]string{
	"FINAL":       "FINAL",
	"F":           "FINAL",
	"LIVE":        "LIVE",
	"IN PROGRESS": "LIVE",
	"SCHEDULED":   "SCHEDULED",
	"PPD":         "POSTPONED",
	"POSTPONED":   "POSTPONED",
	"CANCELLED":   "CANCELLED",
	"CANCELED":    "CANCELLED",
	"SUSPENDED":   "SUSPENDED",
	"RESCHEDULED": "RESCHEDULED",
}

// GameResult is the validated, typed result of transforming a GameMeta
// record. Team IDs are resolved directly from the GameSummary row when
// present there as numeric IDs, falling back to tricode resolution via
// the crosswalk (4.10) for payloads that only carry an abbreviation.
type GameResult struct {
	GameID     string
	Season     string
	GameDate   string
	HomeTeamID int
	AwayTeamID int
	Status     string
	ArenaName  string
	Attendance *int
}

// Game validates and transforms a GameMeta record extracted from
// boxscoresummaryv2's GameSummary row.
func Game(meta extract.GameMeta) (GameResult, error) {
	gameID, _ := meta["GAME_ID"].(string)
	if !gameIDFormat.MatchString(gameID) {
		return GameResult{}, fmt.Errorf("invalid game_id format: %q", gameID)
	}

	explicitSeason, _ := meta["SEASON"].(string)
	gameDate := resolveGameDate(meta)
	season := seasonutil.DeriveSmart(explicitSeason, gameID, gameDate)

	status := normalizeStatus(stringField(meta, "GAME_STATUS_TEXT"))

	homeID, err := resolveTeamID(meta, "HOME_TEAM_ID", "HOME_TEAM_ABBREVIATION", gameID)
	if err != nil {
		return GameResult{}, err
	}
	awayID, err := resolveTeamID(meta, "VISITOR_TEAM_ID", "VISITOR_TEAM_ABBREVIATION", gameID)
	if err != nil {
		return GameResult{}, err
	}
	if homeID == awayID {
		return GameResult{}, fmt.Errorf("home_team_id equals away_team_id (%d) for game %s", homeID, gameID)
	}

	var attendance *int
	if v, ok := meta["ATTENDANCE"]; ok {
		if n, ok := toInt(v); ok {
			attendance = &n
		}
	}

	return GameResult{
		GameID:     gameID,
		Season:     season,
		GameDate:   gameDate,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Status:     status,
		ArenaName:  stringField(meta, "ARENA_NAME"),
		Attendance: attendance,
	}, nil
}

// resolveTeamID reads idField as a numeric team ID when present, falling
// back to resolving tricodeField through the crosswalk.
func resolveTeamID(meta extract.GameMeta, idField, tricodeField, gameID string) (int, error) {
	if v, ok := meta[idField]; ok {
		if n, ok := toInt(v); ok && n != 0 {
			return n, nil
		}
	}
	tricode := stringField(meta, tricodeField)
	if tricode == "" {
		return 0, fmt.Errorf("missing both %s and %s for game %s", idField, tricodeField, gameID)
	}
	return teamcrosswalk.Resolve(tricode, gameID)
}

func resolveGameDate(meta extract.GameMeta) string {
	local := stringField(meta, "GAME_DATE_EST")
	utc := stringField(meta, "GAME_DATE_UTC")
	return datenorm.ResolveGameDate(local, utc)
}

func normalizeStatus(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if canonical, ok := statusSynonyms[key]; ok {
		return canonical
	}
	if key == "" {
		return "SCHEDULED"
	}
	return "SCHEDULED"
}

func stringField(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
