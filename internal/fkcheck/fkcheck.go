// Package fkcheck partitions incoming child records by whether their
// parent game_id already exists in the games table, so the silver
// loaders never attempt an insert that would violate a foreign key.
package fkcheck

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgx query behavior the validator needs.
// Satisfied by *pgxpool.Pool and pgx.Tx alike.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// Rejection records one child record dropped for a missing parent.
type Rejection struct {
	GameID string
	Reason string
}

// ExistingGameIDs queries which of the given game IDs already have a
// parent row in the games table.
func ExistingGameIDs(ctx context.Context, q Querier, gameIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(gameIDs))
	if len(gameIDs) == 0 {
		return existing, nil
	}

	rows, err := q.Query(ctx, "fk_existing_game_ids", gameIDs)
	if err != nil {
		return nil, fmt.Errorf("query existing game ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan game id: %w", err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate existing game ids: %w", err)
	}
	return existing, nil
}

// ValidateGameIDs partitions records by their GameID(r) parent key,
// returning the indices that pass (have an existing parent game row)
// and rejections for the rest. Uses a distinct-game-ID query so a
// batch with many rows per game still issues one lookup per game.
func ValidateGameIDs(ctx context.Context, q Querier, gameIDOf func(i int) string, n int) (valid []int, rejected []Rejection, err error) {
	if n == 0 {
		return nil, nil, nil
	}

	distinct := distinctGameIDs(gameIDOf, n)
	existing, err := ExistingGameIDs(ctx, q, distinct)
	if err != nil {
		return nil, nil, err
	}
	valid, rejected = partition(gameIDOf, n, existing)
	return valid, rejected, nil
}

// ValidateGameIDsWithExisting applies the same partitioning logic as
// ValidateGameIDs against a precomputed existing-parent set, with no
// query involved. Exposed for testing and for callers that already
// hold an existence map for the current run (e.g. a pipeline that
// upserted the parent games moments earlier).
func ValidateGameIDsWithExisting(gameIDOf func(i int) string, n int, existing map[string]bool) (valid []int, rejected []Rejection, err error) {
	if n == 0 {
		return nil, nil, nil
	}
	valid, rejected = partition(gameIDOf, n, existing)
	return valid, rejected, nil
}

func distinctGameIDs(gameIDOf func(i int) string, n int) []string {
	seen := make(map[string]bool)
	distinct := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := gameIDOf(i)
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	return distinct
}

// partition splits record indices into valid/rejected given a
// precomputed set of existing parent game IDs. Kept separate from the
// query so the partitioning logic is testable without a live pool.
func partition(gameIDOf func(i int) string, n int, existing map[string]bool) (valid []int, rejected []Rejection) {
	valid = make([]int, 0, n)
	for i := 0; i < n; i++ {
		id := gameIDOf(i)
		if existing[id] {
			valid = append(valid, i)
		} else {
			rejected = append(rejected, Rejection{GameID: id, Reason: "parent game_id not yet upserted"})
		}
	}
	return valid, rejected
}
