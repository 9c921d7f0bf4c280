package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const refAssignmentsUpsertSQL = `
INSERT INTO ` + config.RefAssignmentsTable + ` (
	game_id, referee_name_slug, referee_name, role, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (game_id, referee_name_slug) DO UPDATE SET
	referee_name = CASE WHEN excluded.referee_name IS DISTINCT FROM ` + config.RefAssignmentsTable + `.referee_name
		THEN excluded.referee_name ELSE ` + config.RefAssignmentsTable + `.referee_name END,
	role = CASE WHEN excluded.role IS DISTINCT FROM ` + config.RefAssignmentsTable + `.role
		THEN excluded.role ELSE ` + config.RefAssignmentsTable + `.role END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.referee_name IS DISTINCT FROM ` + config.RefAssignmentsTable + `.referee_name OR
	excluded.role IS DISTINCT FROM ` + config.RefAssignmentsTable + `.role
)
RETURNING (xmax = 0) AS inserted`

// UpsertRefAssignments upserts per-game official assignments.
func UpsertRefAssignments(ctx context.Context, q Querier, assignments []model.RefAssignment) (int, error) {
	rowArgs := make([][]interface{}, 0, len(assignments))
	for _, a := range assignments {
		rowArgs = append(rowArgs, []interface{}{
			a.GameID, a.RefereeNameSlug, a.RefereeName, a.Role, a.Source, a.SourceURL, a.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, refAssignmentsUpsertSQL, rowArgs)
}

const refAlternatesUpsertSQL = `
INSERT INTO ` + config.RefAlternatesTable + ` (
	game_id, referee_name_slug, referee_name, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (game_id, referee_name_slug) DO UPDATE SET
	referee_name = CASE WHEN excluded.referee_name IS DISTINCT FROM ` + config.RefAlternatesTable + `.referee_name
		THEN excluded.referee_name ELSE ` + config.RefAlternatesTable + `.referee_name END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.referee_name IS DISTINCT FROM ` + config.RefAlternatesTable + `.referee_name
)
RETURNING (xmax = 0) AS inserted`

// UpsertRefAlternates upserts per-game alternate officials.
func UpsertRefAlternates(ctx context.Context, q Querier, alternates []model.RefAlternate) (int, error) {
	rowArgs := make([][]interface{}, 0, len(alternates))
	for _, a := range alternates {
		rowArgs = append(rowArgs, []interface{}{
			a.GameID, a.RefereeNameSlug, a.RefereeName, a.Source, a.SourceURL, a.IngestedAtUTC,
		})
	}
	return execUpsertCountUpdated(ctx, q, refAlternatesUpsertSQL, rowArgs)
}
