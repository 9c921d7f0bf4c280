// Package harvest orchestrates the Bronze-layer raw harvest for a single
// date: discover games from the scoreboard, fetch each game's Tier A
// endpoints, persist raw payloads, and track manifest/quarantine state.
package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/albapepper/scoracle-ingest/internal/httpfetch"
	"github.com/albapepper/scoracle-ingest/internal/rawio"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
	"github.com/albapepper/scoracle-ingest/internal/teamcrosswalk"

	"github.com/albapepper/scoracle-ingest/internal/provider/statsapi"
)

// interGameDelay is a small pause between games so the harvester stays
// polite to the upstream even though requests are already rate-limited.
const interGameDelay = 100 * time.Millisecond

// Summary aggregates one date's harvest outcome for the CLI to report.
type Summary struct {
	Date               string
	GamesDiscovered    int
	GamesExcluded      int
	GamesProcessed     int
	EndpointsSucceeded int
	EndpointsFailed    int
	TotalBytes         int
	QuarantinedGames   []string
	Errors             []string
}

// Options configures a single HarvestDate call.
type Options struct {
	RawRoot         string
	QuarantineFile  string
	SeasonTypeFilter string

	// RefSiteFetcher and RefSiteURLTemplate gate the supplemental
	// reference-site boxscore fetch. The template takes one %s verb
	// filled with the derived basketball-reference-style game ID (see
	// teamcrosswalk.BrefGameID); leave RefSiteFetcher nil to skip this
	// step entirely. It never affects the core endpoint success count.
	RefSiteFetcher     *httpfetch.Fetcher
	RefSiteURLTemplate string
}

// HarvestDate fetches and persists every Tier A endpoint for every game
// on date (YYYY-MM-DD), writing under opts.RawRoot/date/gameID/*.json and
// updating the date's manifest.json and the shared quarantine log.
func HarvestDate(ctx context.Context, client *statsapi.Client, date string, opts Options, logger *slog.Logger) Summary {
	if logger == nil {
		logger = slog.Default()
	}
	summary := Summary{Date: date}

	dateDir := filepath.Join(opts.RawRoot, date)

	scoreboard, _, err := client.Scoreboard(ctx, date)
	if err != nil {
		msg := fmt.Sprintf("fetch scoreboard: %v", err)
		logger.Error("scoreboard fetch failed", "date", date, "error", err)
		summary.Errors = append(summary.Errors, msg)
		return summary
	}

	scoreboardPath := filepath.Join(dateDir, "scoreboard.json")
	if _, err := rawio.WriteJSON(scoreboardPath, scoreboard); err != nil {
		msg := fmt.Sprintf("write scoreboard: %v", err)
		logger.Error("scoreboard write failed", "date", date, "error", err)
		summary.Errors = append(summary.Errors, msg)
		return summary
	}

	gameIDs, excluded := extract.GameIDs(scoreboard, opts.SeasonTypeFilter)
	summary.GamesDiscovered = len(gameIDs)
	summary.GamesExcluded = excluded

	if len(gameIDs) == 0 {
		logger.Info("no games found for date", "date", date, "excluded", excluded)
		return summary
	}

	logger.Info("discovered games for date", "date", date, "count", len(gameIDs), "excluded", excluded)

	for _, gameID := range gameIDs {
		ok := harvestGame(ctx, client, gameID, dateDir, opts, &summary, logger)
		summary.GamesProcessed++
		if !ok {
			summary.QuarantinedGames = append(summary.QuarantinedGames, gameID)
		}

		select {
		case <-ctx.Done():
			summary.Errors = append(summary.Errors, ctx.Err().Error())
			return summary
		case <-time.After(interGameDelay):
		}
	}

	logger.Info("date harvest complete",
		"date", date,
		"games_discovered", summary.GamesDiscovered,
		"games_processed", summary.GamesProcessed,
		"endpoints_succeeded", summary.EndpointsSucceeded,
		"endpoints_failed", summary.EndpointsFailed,
		"total_bytes", summary.TotalBytes,
		"quarantined", len(summary.QuarantinedGames))

	return summary
}

// harvestGame fetches every Tier A endpoint for one game, persisting each
// as it completes and recording the manifest row regardless of partial
// failure. Returns false when fewer than two endpoints succeeded, the
// threshold at which the game is considered unusable for silver-load.
func harvestGame(ctx context.Context, client *statsapi.Client, gameID, dateDir string, opts Options, summary *Summary, logger *slog.Logger) bool {
	gameDir := filepath.Join(dateDir, gameID)
	quarantineFile := opts.QuarantineFile
	rec := rawio.GameRecord{GameID: gameID, Endpoints: map[string]rawio.EndpointRecord{}}

	type endpoint struct {
		name  string
		fetch func() (*statsapi.Response, []byte, error)
	}
	endpoints := []endpoint{
		{"boxscoresummaryv2", func() (*statsapi.Response, []byte, error) { return client.BoxscoreSummary(ctx, gameID) }},
		{"boxscoretraditionalv2", func() (*statsapi.Response, []byte, error) { return client.BoxscoreTraditional(ctx, gameID) }},
		{"playbyplayv2", func() (*statsapi.Response, []byte, error) { return client.PlayByPlay(ctx, gameID) }},
	}

	var teamIDs []int
	for _, ep := range endpoints {
		resp, _, err := ep.fetch()
		if err != nil {
			recordFailure(&rec, summary, quarantineFile, gameID, ep.name, err, logger)
			continue
		}
		path := filepath.Join(gameDir, ep.name+".json")
		result, err := rawio.WriteJSON(path, resp)
		if err != nil {
			recordFailure(&rec, summary, quarantineFile, gameID, ep.name, err, logger)
			continue
		}
		rec.Endpoints[ep.name] = rawio.EndpointRecord{Bytes: result.Bytes, SHA1: result.SHA1, Gz: result.Gz, OK: true}
		summary.EndpointsSucceeded++
		summary.TotalBytes += result.Bytes

		if ep.name == "boxscoresummaryv2" && teamIDs == nil {
			if ids, ok := extractTeamIDs(resp); ok {
				teamIDs = ids
				rec.Teams = ids
			}
		}
	}

	shotResp, shotErr := client.ShotChart(ctx, gameID, teamIDs)
	if shotErr != nil {
		recordFailure(&rec, summary, quarantineFile, gameID, "shotchartdetail", shotErr, logger)
	} else {
		path := filepath.Join(gameDir, "shotchartdetail.json")
		result, err := rawio.WriteJSON(path, shotResp)
		if err != nil {
			recordFailure(&rec, summary, quarantineFile, gameID, "shotchartdetail", err, logger)
		} else {
			rec.Endpoints["shotchartdetail"] = rawio.EndpointRecord{Bytes: result.Bytes, SHA1: result.SHA1, Gz: result.Gz, OK: true}
			summary.EndpointsSucceeded++
			summary.TotalBytes += result.Bytes
		}
	}

	fetchRefSiteBoxscore(ctx, opts, filepath.Base(dateDir), gameID, gameDir, teamIDs, logger)

	if _, err := rawio.UpdateManifest(dateDir, filepath.Base(dateDir), rec); err != nil {
		logger.Error("manifest update failed", "game_id", gameID, "error", err)
	}

	okCount := 0
	for _, ep := range rec.Endpoints {
		if ep.OK {
			okCount++
		}
	}
	success := okCount >= 2
	if !success {
		logger.Warn("game quarantined, too few successful endpoints", "game_id", gameID, "ok_endpoints", okCount)
	}
	return success
}

// fetchRefSiteBoxscore fetches and persists the supplemental reference-site
// boxscore page, when opts.RefSiteFetcher is configured. This is a
// best-effort addition to the raw tree: it never participates in the
// core endpoint success count, since older/obscure games may not have
// a matching page, and a miss here must never quarantine an otherwise
// healthy game.
func fetchRefSiteBoxscore(ctx context.Context, opts Options, date, gameID, gameDir string, teamIDs []int, logger *slog.Logger) {
	if opts.RefSiteFetcher == nil || opts.RefSiteURLTemplate == "" || len(teamIDs) != 2 {
		return
	}
	brefID, ok := teamcrosswalk.BrefGameID(date, teamIDs[0])
	if !ok {
		return
	}
	url := fmt.Sprintf(opts.RefSiteURLTemplate, brefID)
	body, _, err := opts.RefSiteFetcher.Get(ctx, url, nil)
	if err != nil {
		logger.Warn("refsite boxscore fetch failed", "game_id", gameID, "bref_game_id", brefID, "error", err)
		return
	}
	path := filepath.Join(gameDir, "refsite_boxscore.html")
	if _, err := rawio.WriteRaw(path, body); err != nil {
		logger.Warn("refsite boxscore write failed", "game_id", gameID, "error", err)
	}
}

func recordFailure(rec *rawio.GameRecord, summary *Summary, quarantineFile, gameID, endpointName string, err error, logger *slog.Logger) {
	rec.Endpoints[endpointName] = rawio.EndpointRecord{OK: false}
	rec.Errors = append(rec.Errors, fmt.Sprintf("%s: %v", endpointName, err))
	summary.EndpointsFailed++
	logger.Warn("endpoint fetch failed", "game_id", gameID, "endpoint", endpointName, "error", err)
	if qErr := rawio.AppendQuarantine(quarantineFile, gameID, endpointName, err); qErr != nil {
		logger.Error("quarantine append failed", "game_id", gameID, "endpoint", endpointName, "error", qErr)
	}
}

// extractTeamIDs pulls home/visitor team IDs out of a boxscore summary's
// GameSummary result set, for the shot chart's per-team fallback fetch.
func extractTeamIDs(resp *statsapi.Response) ([]int, bool) {
	rs, ok := resp.ResultSetByName("GameSummary")
	if !ok {
		return nil, false
	}
	rows := rs.Rows()
	if len(rows) == 0 {
		return nil, false
	}
	row := rows[0]
	home, homeOK := toInt(row["HOME_TEAM_ID"])
	away, awayOK := toInt(row["VISITOR_TEAM_ID"])
	if !homeOK || !awayOK {
		return nil, false
	}
	return []int{home, away}, true
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
