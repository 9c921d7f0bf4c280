package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const crosswalkUpsertSQL = `
INSERT INTO ` + config.CrosswalkTable + ` (
	game_id, bref_game_id, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (game_id) DO UPDATE SET
	bref_game_id = CASE WHEN excluded.bref_game_id IS DISTINCT FROM ` + config.CrosswalkTable + `.bref_game_id
		THEN excluded.bref_game_id ELSE ` + config.CrosswalkTable + `.bref_game_id END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.bref_game_id IS DISTINCT FROM ` + config.CrosswalkTable + `.bref_game_id
)
RETURNING (xmax = 0) AS inserted`

// UpsertCrosswalk idempotently writes one game's cross-provider ID map.
func UpsertCrosswalk(ctx context.Context, q Querier, c model.GameIdCrosswalk) (int, error) {
	args := [][]interface{}{{
		c.GameID, c.BrefGameID, c.Source, c.SourceURL, c.IngestedAtUTC,
	}}
	return execUpsertCountUpdated(ctx, q, crosswalkUpsertSQL, args)
}

const injuryUpsertSQL = `
INSERT INTO ` + config.InjuryStatusTable + ` (
	game_id, player_id, status, reason, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (game_id, player_id) DO UPDATE SET
	status = CASE WHEN excluded.status IS DISTINCT FROM ` + config.InjuryStatusTable + `.status
		THEN excluded.status ELSE ` + config.InjuryStatusTable + `.status END,
	reason = CASE WHEN excluded.reason IS DISTINCT FROM ` + config.InjuryStatusTable + `.reason
		THEN excluded.reason ELSE ` + config.InjuryStatusTable + `.reason END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.status IS DISTINCT FROM ` + config.InjuryStatusTable + `.status OR
	excluded.reason IS DISTINCT FROM ` + config.InjuryStatusTable + `.reason
)
RETURNING (xmax = 0) AS inserted`

// UpsertInjuryStatuses upserts the whole request's injury rows. Best
// effort: an empty slice is a valid outcome, not an error.
func UpsertInjuryStatuses(ctx context.Context, q Querier, statuses []model.InjuryStatus) (int, error) {
	rowArgs := make([][]interface{}, 0, len(statuses))
	for _, s := range statuses {
		rowArgs = append(rowArgs, []interface{}{
			s.GameID, s.PlayerID, s.Status, nilEmpty(s.Reason), s.Source, s.SourceURL, s.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, injuryUpsertSQL, rowArgs)
}
