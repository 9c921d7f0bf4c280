package loader

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTx runs fn inside a transaction when pool is a real connection pool,
// committing on success and rolling back on error. This mirrors the
// Python original's maybe_transaction helper, which degrades gracefully
// for connections that don't support transactions; here that degrade
// path is exercised by passing a bare Querier (e.g. in tests) directly to
// a loader instead of going through WithTx.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(q Querier) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
