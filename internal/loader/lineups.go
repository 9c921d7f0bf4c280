package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const lineupStintsUpsertSQL = `
INSERT INTO ` + config.LineupStintsTable + ` (
	game_id, team_id, period, lineup_player_ids, seconds_played,
	source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (game_id, team_id, period, lineup_player_ids) DO UPDATE SET
	seconds_played = CASE WHEN excluded.seconds_played IS DISTINCT FROM ` + config.LineupStintsTable + `.seconds_played
		THEN excluded.seconds_played ELSE ` + config.LineupStintsTable + `.seconds_played END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.seconds_played IS DISTINCT FROM ` + config.LineupStintsTable + `.seconds_played
)
RETURNING (xmax = 0) AS inserted`

// UpsertLineupStints upserts the whole request's lineup stints in a
// single pass.
func UpsertLineupStints(ctx context.Context, q Querier, stints []model.LineupStint) (int, error) {
	rowArgs := make([][]interface{}, 0, len(stints))
	for _, s := range stints {
		rowArgs = append(rowArgs, []interface{}{
			s.GameID, s.TeamID, s.Period, sortedSlice(s.LineupPlayerIDs), s.SecondsPlayed,
			s.Source, s.SourceURL, s.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, lineupStintsUpsertSQL, rowArgs)
}

func sortedSlice(ids [5]int) []int {
	out := make([]int, 5)
	copy(out, ids[:])
	return out
}

const startingLineupsUpsertSQL = `
INSERT INTO ` + config.StartingLineupsTable + ` (
	game_id, team_id, player_ids, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (game_id, team_id) DO UPDATE SET
	player_ids = CASE WHEN excluded.player_ids IS DISTINCT FROM ` + config.StartingLineupsTable + `.player_ids
		THEN excluded.player_ids ELSE ` + config.StartingLineupsTable + `.player_ids END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.player_ids IS DISTINCT FROM ` + config.StartingLineupsTable + `.player_ids
)
RETURNING (xmax = 0) AS inserted`

// UpsertStartingLineups upserts the 5 starters per team per game.
func UpsertStartingLineups(ctx context.Context, q Querier, lineups []model.StartingLineup) (int, error) {
	rowArgs := make([][]interface{}, 0, len(lineups))
	for _, l := range lineups {
		rowArgs = append(rowArgs, []interface{}{
			l.GameID, l.TeamID, sortedSlice(l.PlayerIDs), l.Source, l.SourceURL, l.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, startingLineupsUpsertSQL, rowArgs)
}
