package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const outcomeUpsertSQL = `
INSERT INTO ` + config.OutcomesTable + ` (
	game_id, home_points, away_points, total_points, home_win, margin,
	source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (game_id) DO UPDATE SET
	home_points = CASE WHEN excluded.home_points IS DISTINCT FROM ` + config.OutcomesTable + `.home_points
		THEN excluded.home_points ELSE ` + config.OutcomesTable + `.home_points END,
	away_points = CASE WHEN excluded.away_points IS DISTINCT FROM ` + config.OutcomesTable + `.away_points
		THEN excluded.away_points ELSE ` + config.OutcomesTable + `.away_points END,
	total_points = CASE WHEN excluded.total_points IS DISTINCT FROM ` + config.OutcomesTable + `.total_points
		THEN excluded.total_points ELSE ` + config.OutcomesTable + `.total_points END,
	home_win = CASE WHEN excluded.home_win IS DISTINCT FROM ` + config.OutcomesTable + `.home_win
		THEN excluded.home_win ELSE ` + config.OutcomesTable + `.home_win END,
	margin = CASE WHEN excluded.margin IS DISTINCT FROM ` + config.OutcomesTable + `.margin
		THEN excluded.margin ELSE ` + config.OutcomesTable + `.margin END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.home_points IS DISTINCT FROM ` + config.OutcomesTable + `.home_points OR
	excluded.away_points IS DISTINCT FROM ` + config.OutcomesTable + `.away_points OR
	excluded.total_points IS DISTINCT FROM ` + config.OutcomesTable + `.total_points OR
	excluded.home_win IS DISTINCT FROM ` + config.OutcomesTable + `.home_win OR
	excluded.margin IS DISTINCT FROM ` + config.OutcomesTable + `.margin
)
RETURNING (xmax = 0) AS inserted`

// UpsertOutcome idempotently writes one game's final outcome.
func UpsertOutcome(ctx context.Context, q Querier, o model.Outcome) (int, error) {
	args := [][]interface{}{{
		o.GameID, o.HomePoints, o.AwayPoints, o.TotalPoints, o.HomeWin, o.Margin,
		o.Source, o.SourceURL, o.IngestedAtUTC,
	}}
	return execUpsertCountUpdated(ctx, q, outcomeUpsertSQL, args)
}
