package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const shotsUpsertSQL = `
INSERT INTO ` + config.ShotEventsTable + ` (
	game_id, player_id, period, loc_x, loc_y, team_id, shot_made_flag,
	event_num, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
ON CONFLICT (game_id, player_id, period, loc_x, loc_y) DO UPDATE SET
	team_id = CASE WHEN excluded.team_id IS DISTINCT FROM ` + config.ShotEventsTable + `.team_id
		THEN excluded.team_id ELSE ` + config.ShotEventsTable + `.team_id END,
	shot_made_flag = CASE WHEN excluded.shot_made_flag IS DISTINCT FROM ` + config.ShotEventsTable + `.shot_made_flag
		THEN excluded.shot_made_flag ELSE ` + config.ShotEventsTable + `.shot_made_flag END,
	event_num = CASE WHEN excluded.event_num IS DISTINCT FROM ` + config.ShotEventsTable + `.event_num
		THEN excluded.event_num ELSE ` + config.ShotEventsTable + `.event_num END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.team_id IS DISTINCT FROM ` + config.ShotEventsTable + `.team_id OR
	excluded.shot_made_flag IS DISTINCT FROM ` + config.ShotEventsTable + `.shot_made_flag OR
	excluded.event_num IS DISTINCT FROM ` + config.ShotEventsTable + `.event_num
)
RETURNING (xmax = 0) AS inserted`

// UpsertShotEvents upserts the whole request's shot rows in a single
// pass — spec.md batches shots as one whole-request batch, not chunked
// like PBP.
func UpsertShotEvents(ctx context.Context, q Querier, shots []model.ShotEvent) (int, error) {
	rowArgs := make([][]interface{}, 0, len(shots))
	for _, s := range shots {
		rowArgs = append(rowArgs, []interface{}{
			s.GameID, s.PlayerID, s.Period, s.LocX, s.LocY, s.TeamID, s.ShotMadeFlag,
			s.EventNum, s.Source, s.SourceURL, s.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, shotsUpsertSQL, rowArgs)
}
