// Package pipeline coordinates one game through extract -> transform ->
// load, tracking a small state machine so a caller can see exactly which
// phase a game reached (or failed at) without reading error strings.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/scoracle-ingest/internal/clockutil"
	"github.com/albapepper/scoracle-ingest/internal/fkcheck"
	"github.com/albapepper/scoracle-ingest/internal/loader"
	"github.com/albapepper/scoracle-ingest/internal/model"
	"github.com/albapepper/scoracle-ingest/internal/provider/gamebook"
	"github.com/albapepper/scoracle-ingest/internal/provider/refsite"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
	"github.com/albapepper/scoracle-ingest/internal/silver/reader"
	"github.com/albapepper/scoracle-ingest/internal/teamcrosswalk"
	"github.com/albapepper/scoracle-ingest/internal/transform"
)

// State is the game's position in the per-game phase state machine.
type State string

const (
	StatePending         State = "PENDING"
	StateFetchedBoxscore State = "FETCHED_BOXSCORE"
	StateGameUpserted    State = "GAME_UPSERTED"
	StatePbpUpserted     State = "PBP_UPSERTED"
	StateLineupsUpserted State = "LINEUPS_UPSERTED"
	StateDone            State = "DONE"
)

// PhaseFailed reports a state machine halt at the named phase (e.g.
// "pbp", "lineups") while still recording how far processing got.
func PhaseFailed(phase string) State {
	return State("PHASE_FAILED:" + phase)
}

// Source identifies the provenance tag written onto every upserted record
// sourced directly from the stats API payloads.
const Source = "stats.nba.com"

// GamebookTextExtractor, when non-nil, is consulted for referee
// alternates when a gamebook PDF has been placed in a game's raw
// directory. Nil by default: PDF-to-text decoding is an external
// boundary this module does not implement (see gamebook.TextExtractor).
var GamebookTextExtractor gamebook.TextExtractor

// Result reports one game's processing outcome.
type Result struct {
	GameID          string
	State           State
	GameUpserted    bool
	PbpEvents       int
	ShotEvents      int
	StartersRows    int
	LineupStints    int
	RefAssignments  int
	RefAlternates   int
	CrosswalkRows   int
	InjuryRows      int
	OutcomeUpserted bool
	Errors          []string
	Duration        time.Duration
}

func (r *Result) fail(phase string, err error) {
	r.State = PhaseFailed(phase)
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", phase, err))
}

// ProcessGame runs the full foundation pipeline for one game inside a
// single transaction, reading every endpoint from its already-persisted
// Bronze-tier raw JSON via raw (RAW_ROOT/date/gameID/*.json) rather than
// re-fetching the network — silver-load is a pure disk-to-database step,
// matching the original pipeline's process_game, which never touches the
// network once the raw tree exists. Each phase is isolated: a failure in
// one phase is recorded and processing continues into the next phase
// whenever the data it needs is still available. Before any child-table
// batch (PBP, shots, lineups, ref assignments/alternates) is upserted,
// fkcheck partitions it against the just-upserted (or already-existing)
// parent game_id, so a failed game upsert cannot produce an FK violation
// at commit time.
func ProcessGame(ctx context.Context, pool *pgxpool.Pool, raw *reader.Reader, date, gameID string, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	result := Result{GameID: gameID, State: StatePending}
	now := time.Now().UTC()
	prov := func() model.Provenance {
		return model.Provenance{Source: Source, SourceURL: "https://stats.nba.com/stats/", IngestedAtUTC: now}
	}

	gameDir := filepath.Join(raw.DateDir(date), gameID)

	err := loader.WithTx(ctx, pool, func(q loader.Querier) error {
		summary := raw.BoxscoreSummary(gameDir)
		if summary == nil {
			result.fail("boxscore_summary_read", fmt.Errorf("boxscoresummaryv2.json missing or unreadable"))
			return nil
		}
		traditional := raw.BoxscoreTraditional(gameDir)
		if traditional == nil {
			logger.Warn("boxscore traditional missing, lineups will be skipped", "game_id", gameID)
		}
		result.State = StateFetchedBoxscore

		// existing tracks which parent game_ids are known-good for this
		// commit, seeded by whatever already exists plus this game's own
		// upsert below — fkcheck validates every child batch against it.
		existing, err := fkcheck.ExistingGameIDs(ctx, q, []string{gameID})
		if err != nil {
			result.fail("fk_precheck", err)
			return nil
		}

		var homeTeamID, awayTeamID int
		if meta, ok := extract.GameMetaFromSummary(summary); ok {
			gr, err := transform.Game(meta)
			if err != nil {
				result.fail("game_transform", err)
			} else {
				g := model.Game{
					GameID:     gr.GameID,
					Season:     gr.Season,
					GameDate:   gr.GameDate,
					HomeTeamID: gr.HomeTeamID,
					AwayTeamID: gr.AwayTeamID,
					Status:     model.GameStatus(gr.Status),
					ArenaName:  gr.ArenaName,
					Attendance: gr.Attendance,
					Provenance: prov(),
				}
				if _, err := loader.UpsertGame(ctx, q, g); err != nil {
					result.fail("game_upsert", err)
				} else {
					result.GameUpserted = true
					result.State = StateGameUpserted
					homeTeamID, awayTeamID = gr.HomeTeamID, gr.AwayTeamID
					existing[gameID] = true
				}

				if lineScore := extract.LineScoreRows(summary); lineScore != nil {
					if outcome, ok := transform.Outcome(gameID, homeTeamID, awayTeamID, lineScore); ok {
						outcome.Provenance = prov()
						if _, err := loader.UpsertOutcome(ctx, q, outcome); err != nil {
							result.fail("outcome_upsert", err)
						} else {
							result.OutcomeUpserted = true
						}
					}
				} else if html, ok := raw.RefSiteBoxscoreHTML(gameDir); ok {
					processRefSiteOutcomeFallback(ctx, q, gameID, homeTeamID, awayTeamID, html, prov, &result, logger)
				}
			}

			if officialRows := extract.Officials(summary); len(officialRows) > 0 {
				assignments := transform.Officials(gameID, officialRows)
				for i := range assignments {
					assignments[i].Provenance = prov()
				}
				valid, rejected := validateGameIDs(assignments, func(a model.RefAssignment) string { return a.GameID }, existing)
				logRejections(logger, gameID, "ref_assignments", rejected)
				n, err := loader.UpsertRefAssignments(ctx, q, valid)
				if err != nil {
					result.fail("ref_assignments_upsert", err)
				} else {
					result.RefAssignments = n
				}
			}

			if rows := extract.InactivePlayers(summary); len(rows) > 0 {
				statuses := transform.InjuryStatuses(gameID, rows)
				for i := range statuses {
					statuses[i].Provenance = prov()
				}
				valid, rejected := validateGameIDs(statuses, func(s model.InjuryStatus) string { return s.GameID }, existing)
				logRejections(logger, gameID, "injury_status", rejected)
				n, err := loader.UpsertInjuryStatuses(ctx, q, valid)
				if err != nil {
					result.fail("injury_status_upsert", err)
				} else {
					result.InjuryRows = n
				}
			}
		} else {
			result.fail("game_meta_extract", fmt.Errorf("no GameSummary result set"))
		}

		if existing[gameID] {
			if brefID, ok := teamcrosswalk.BrefGameID(date, homeTeamID); ok {
				crosswalk := model.GameIdCrosswalk{GameID: gameID, BrefGameID: &brefID, Provenance: prov()}
				if _, err := loader.UpsertCrosswalk(ctx, q, crosswalk); err != nil {
					result.fail("crosswalk_upsert", err)
				} else {
					result.CrosswalkRows = 1
				}
			}
		}

		processGamebookAlternates(ctx, q, raw, gameDir, gameID, existing, prov, &result, logger)

		pbpResp := raw.PlayByPlay(gameDir)
		if pbpResp == nil {
			result.fail("pbp_read", fmt.Errorf("playbyplayv2.json missing or unreadable"))
		} else {
			pbpRows := extract.PBP(pbpResp)
			events := transform.PBP(gameID, pbpRows)
			for i := range events {
				events[i].Provenance = prov()
			}
			valid, rejected := validateGameIDs(events, func(e model.PbpEvent) string { return e.GameID }, existing)
			logRejections(logger, gameID, "pbp_events", rejected)
			n, err := loader.UpsertPbpEvents(ctx, q, valid)
			if err != nil {
				result.fail("pbp_upsert", err)
			} else {
				result.PbpEvents = len(valid)
				_ = n
				if result.State == StateGameUpserted {
					result.State = StatePbpUpserted
				}
			}

			if traditional != nil {
				statsRows := extract.PlayerStats(traditional)
				starters := transform.StartingLineups(gameID, statsRows)
				for i := range starters {
					starters[i].Provenance = prov()
				}
				validStarters, rejectedStarters := validateGameIDs(starters, func(s model.StartingLineup) string { return s.GameID }, existing)
				logRejections(logger, gameID, "starting_lineups", rejectedStarters)
				if _, err := loader.UpsertStartingLineups(ctx, q, validStarters); err != nil {
					result.fail("starting_lineups_upsert", err)
				} else {
					result.StartersRows = len(validStarters)
				}

				stints := transform.LineupStints(gameID, events, starters)
				for i := range stints {
					stints[i].Provenance = prov()
				}
				validStints, rejectedStints := validateGameIDs(stints, func(s model.LineupStint) string { return s.GameID }, existing)
				logRejections(logger, gameID, "lineup_stints", rejectedStints)
				if _, err := loader.UpsertLineupStints(ctx, q, validStints); err != nil {
					result.fail("lineup_stints_upsert", err)
				} else {
					result.LineupStints = len(validStints)
					if result.State == StatePbpUpserted {
						result.State = StateLineupsUpserted
					}
				}
			}
		}

		if shotResp := raw.ShotChart(gameDir); shotResp != nil {
			shotRows := extract.Shots(shotResp)
			shots := transform.Shots(gameID, shotRows)
			for i := range shots {
				shots[i].Provenance = prov()
			}
			valid, rejected := validateGameIDs(shots, func(s model.ShotEvent) string { return s.GameID }, existing)
			logRejections(logger, gameID, "shot_events", rejected)
			if _, err := loader.UpsertShotEvents(ctx, q, valid); err != nil {
				result.fail("shot_events_upsert", err)
			} else {
				result.ShotEvents = len(valid)
			}
		}

		if result.GameUpserted && len(result.Errors) == 0 {
			result.State = StateDone
		}
		return nil
	})
	if err != nil {
		result.fail("transaction", err)
	}

	result.Duration = time.Since(start)
	logger.Info("game processed", "game_id", gameID, "state", result.State,
		"pbp_events", result.PbpEvents, "shot_events", result.ShotEvents,
		"lineup_stints", result.LineupStints, "errors", len(result.Errors))
	return result
}

// validateGameIDs runs fkcheck over a homogeneous batch of child records,
// returning only the records whose parent game_id is in existing.
func validateGameIDs[T any](records []T, gameIDOf func(T) string, existing map[string]bool) (valid []T, rejected []fkcheck.Rejection) {
	validIdx, rej, _ := fkcheck.ValidateGameIDsWithExisting(func(i int) string { return gameIDOf(records[i]) }, len(records), existing)
	out := make([]T, 0, len(validIdx))
	for _, i := range validIdx {
		out = append(out, records[i])
	}
	return out, rej
}

func logRejections(logger *slog.Logger, gameID, table string, rejected []fkcheck.Rejection) {
	if len(rejected) == 0 {
		return
	}
	logger.Warn("fk check rejected rows", "game_id", gameID, "table", table, "count", len(rejected))
}

// processRefSiteOutcomeFallback derives an Outcome from the reference-site
// boxscore's line_score table when the stats API's own LineScore result
// set was absent from the boxscore summary. The table's rows carry
// tricodes and totals as plain text (no numeric team IDs), so this
// re-derives team IDs via teamcrosswalk instead of reusing
// transform.Outcome, which expects the stats API's TEAM_ID/PTS shape.
func processRefSiteOutcomeFallback(ctx context.Context, q loader.Querier, gameID string, homeTeamID, awayTeamID int, html string, prov func() model.Provenance, result *Result, logger *slog.Logger) {
	parser := refsite.NewParser()
	tables, err := parser.ParseBoxscore(html)
	if err != nil {
		logger.Warn("refsite boxscore parse failed", "game_id", gameID, "error", err)
		return
	}
	lineScore, ok := tables["line_score"]
	if !ok {
		return
	}

	points := map[int]int{}
	for _, row := range lineScore.Rows {
		tricode := strings.ToUpper(strings.TrimSpace(row["team"]))
		total, err := strconv.Atoi(strings.TrimSpace(row["T"]))
		if tricode == "" || err != nil {
			continue
		}
		teamID, resolveErr := teamcrosswalk.Resolve(tricode, gameID)
		if resolveErr != nil {
			continue
		}
		points[teamID] = total
	}

	homePoints, homeOK := points[homeTeamID]
	awayPoints, awayOK := points[awayTeamID]
	if !homeOK || !awayOK {
		return
	}

	outcome := model.Outcome{
		GameID:      gameID,
		HomePoints:  homePoints,
		AwayPoints:  awayPoints,
		TotalPoints: homePoints + awayPoints,
		HomeWin:     homePoints > awayPoints,
		Margin:      homePoints - awayPoints,
		Provenance:  prov(),
	}
	outcome.Provenance.Source = "basketball-reference.com"
	if _, err := loader.UpsertOutcome(ctx, q, outcome); err != nil {
		result.fail("outcome_upsert_refsite_fallback", err)
		return
	}
	result.OutcomeUpserted = true
}

// processGamebookAlternates extracts referee alternates from a persisted
// gamebook PDF, when one exists for this game and GamebookTextExtractor
// is configured. Both conditions are commonly false in a default
// deployment: the PDF text-extraction backend is an external boundary
// (see gamebook.TextExtractor) left unimplemented here, and per-game
// PDF placement is an operator-driven step since gamebook listings
// aren't keyed by game ID.
func processGamebookAlternates(ctx context.Context, q loader.Querier, raw *reader.Reader, gameDir, gameID string, existing map[string]bool, prov func() model.Provenance, result *Result, logger *slog.Logger) {
	if GamebookTextExtractor == nil {
		return
	}
	pdf, ok := raw.GamebookPDF(gameDir)
	if !ok {
		return
	}
	text, err := GamebookTextExtractor.ExtractText(pdf)
	if err != nil {
		logger.Warn("gamebook text extraction failed", "game_id", gameID, "error", err)
		return
	}
	_, alternates := gamebook.ExtractReferees(gameID, text)
	if len(alternates) == 0 {
		return
	}
	for i := range alternates {
		alternates[i].Provenance = prov()
		alternates[i].Provenance.Source = "gamebook"
	}
	valid, rejected := validateGameIDs(alternates, func(a model.RefAlternate) string { return a.GameID }, existing)
	logRejections(logger, gameID, "ref_alternates", rejected)
	n, err := loader.UpsertRefAlternates(ctx, q, valid)
	if err != nil {
		result.fail("ref_alternates_upsert", err)
		return
	}
	result.RefAlternates = n
}

// ProcessGames runs ProcessGame over gameIDs with bounded concurrency,
// following the same channel-of-work + worker-pool shape used elsewhere
// in this codebase for concurrent per-item processing.
func ProcessGames(ctx context.Context, pool *pgxpool.Pool, raw *reader.Reader, date string, gameIDs []string, concurrency int, logger *slog.Logger) []Result {
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(gameIDs) {
		concurrency = len(gameIDs)
	}
	if len(gameIDs) == 0 {
		return nil
	}

	ch := make(chan string, len(gameIDs))
	for _, id := range gameIDs {
		ch <- id
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup
	results := make([]Result, 0, len(gameIDs))

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gameID := range ch {
				r := ProcessGame(ctx, pool, raw, date, gameID, logger)
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return results
}

// HealthCheck reports whether the database answers the prepared
// health_check statement and whether clock parsing turns "24:49" into
// 1489 seconds. No transform is exercised.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool) map[string]bool {
	health := map[string]bool{
		"database":    false,
		"clock_parse": false,
	}

	var n int
	if err := pool.QueryRow(ctx, "health_check").Scan(&n); err == nil && n == 1 {
		health["database"] = true
	}

	if seconds, ok := clockParseProbe(); ok && seconds == 1489.0 {
		health["clock_parse"] = true
	}

	return health
}

func clockParseProbe() (float64, bool) {
	return clockutil.ParseToSeconds("24:49")
}
