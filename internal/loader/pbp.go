package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const pbpBatchSize = 1000

const pbpUpsertSQL = `
INSERT INTO ` + config.PbpEventsTable + ` (
	game_id, event_idx, period, clock, clock_seconds, seconds_elapsed,
	team_id, player1_id, action_type, action_subtype, description,
	source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT (game_id, event_idx) DO UPDATE SET
	period = CASE WHEN excluded.period IS DISTINCT FROM ` + config.PbpEventsTable + `.period
		THEN excluded.period ELSE ` + config.PbpEventsTable + `.period END,
	clock = CASE WHEN excluded.clock IS DISTINCT FROM ` + config.PbpEventsTable + `.clock
		THEN excluded.clock ELSE ` + config.PbpEventsTable + `.clock END,
	clock_seconds = CASE WHEN excluded.clock_seconds IS DISTINCT FROM ` + config.PbpEventsTable + `.clock_seconds
		THEN excluded.clock_seconds ELSE ` + config.PbpEventsTable + `.clock_seconds END,
	seconds_elapsed = CASE WHEN excluded.seconds_elapsed IS DISTINCT FROM ` + config.PbpEventsTable + `.seconds_elapsed
		THEN excluded.seconds_elapsed ELSE ` + config.PbpEventsTable + `.seconds_elapsed END,
	team_id = CASE WHEN excluded.team_id IS DISTINCT FROM ` + config.PbpEventsTable + `.team_id
		THEN excluded.team_id ELSE ` + config.PbpEventsTable + `.team_id END,
	player1_id = CASE WHEN excluded.player1_id IS DISTINCT FROM ` + config.PbpEventsTable + `.player1_id
		THEN excluded.player1_id ELSE ` + config.PbpEventsTable + `.player1_id END,
	action_type = CASE WHEN excluded.action_type IS DISTINCT FROM ` + config.PbpEventsTable + `.action_type
		THEN excluded.action_type ELSE ` + config.PbpEventsTable + `.action_type END,
	action_subtype = CASE WHEN excluded.action_subtype IS DISTINCT FROM ` + config.PbpEventsTable + `.action_subtype
		THEN excluded.action_subtype ELSE ` + config.PbpEventsTable + `.action_subtype END,
	description = CASE WHEN excluded.description IS DISTINCT FROM ` + config.PbpEventsTable + `.description
		THEN excluded.description ELSE ` + config.PbpEventsTable + `.description END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.period IS DISTINCT FROM ` + config.PbpEventsTable + `.period OR
	excluded.clock IS DISTINCT FROM ` + config.PbpEventsTable + `.clock OR
	excluded.clock_seconds IS DISTINCT FROM ` + config.PbpEventsTable + `.clock_seconds OR
	excluded.seconds_elapsed IS DISTINCT FROM ` + config.PbpEventsTable + `.seconds_elapsed OR
	excluded.team_id IS DISTINCT FROM ` + config.PbpEventsTable + `.team_id OR
	excluded.player1_id IS DISTINCT FROM ` + config.PbpEventsTable + `.player1_id OR
	excluded.action_type IS DISTINCT FROM ` + config.PbpEventsTable + `.action_type OR
	excluded.action_subtype IS DISTINCT FROM ` + config.PbpEventsTable + `.action_subtype OR
	excluded.description IS DISTINCT FROM ` + config.PbpEventsTable + `.description
)
RETURNING (xmax = 0) AS inserted`

// UpsertPbpEvents upserts events in batches of 1000, returning the total
// count of rows actually updated across all batches.
func UpsertPbpEvents(ctx context.Context, q Querier, events []model.PbpEvent) (int, error) {
	total := 0
	for start := 0; start < len(events); start += pbpBatchSize {
		end := start + pbpBatchSize
		if end > len(events) {
			end = len(events)
		}
		n, err := upsertPbpBatch(ctx, q, events[start:end])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func upsertPbpBatch(ctx context.Context, q Querier, batch []model.PbpEvent) (int, error) {
	rowArgs := make([][]interface{}, 0, len(batch))
	for _, e := range batch {
		rowArgs = append(rowArgs, []interface{}{
			e.GameID, e.EventIdx, e.Period, e.Clock, e.ClockSeconds, e.SecondsElapsed,
			e.TeamID, e.Player1ID, e.ActionType, e.ActionSubtype, nilEmpty(e.Description),
			e.Source, e.SourceURL, e.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, pbpUpsertSQL, rowArgs)
}
