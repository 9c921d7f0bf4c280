// Package loader implements the idempotent, diff-aware upserts spec.md
// §4.12 requires: every table's update branch fires only when at least one
// column actually changed (`excluded.col IS DISTINCT FROM target.col`),
// and each loader call returns the count of rows *actually updated* —
// insert counts are reported separately as 0, mirroring the original
// Python loaders' `result.startswith('UPDATE')` signal, adapted to pgx's
// `xmax = 0` insert/update discriminator since pgx does not expose a
// textual command tag per conflicting row.
package loader

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by *pgxpool.Pool, pgx.Tx, and test doubles.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// execUpsertCountUpdated runs an INSERT ... ON CONFLICT DO UPDATE query
// ending in `RETURNING (xmax = 0) AS inserted` for each row in rowArgs and
// returns how many rows were updated (as opposed to freshly inserted or
// left untouched because the diff-aware WHERE clause found no change).
func execUpsertCountUpdated(ctx context.Context, q Querier, sql string, rowArgs [][]interface{}) (int, error) {
	updated := 0
	for _, args := range rowArgs {
		n, err := execOne(ctx, q, sql, args)
		if err != nil {
			return updated, err
		}
		updated += n
	}
	return updated, nil
}

func execOne(ctx context.Context, q Querier, sql string, args []interface{}) (int, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	updated := 0
	for rows.Next() {
		var inserted bool
		if err := rows.Scan(&inserted); err != nil {
			return updated, err
		}
		if !inserted {
			updated++
		}
	}
	return updated, rows.Err()
}
