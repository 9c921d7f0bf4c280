package loader

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

// fakeRows is a minimal pgx.Rows double over a fixed set of scanned bool
// values, enough to exercise execOne's inserted/updated accounting without
// a live connection.
type fakeRows struct {
	vals []bool
	idx  int
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) Err() error                                    { return nil }
func (f *fakeRows) CommandTag() pgconn.CommandTag                 { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription  { return nil }
func (f *fakeRows) RawValues() [][]byte                           { return nil }
func (f *fakeRows) Conn() *pgx.Conn                               { return nil }
func (f *fakeRows) Values() ([]any, error)                        { return []any{f.vals[f.idx-1]}, nil }

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.vals) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	b := dest[0].(*bool)
	*b = f.vals[f.idx-1]
	return nil
}

// fakeQuerier returns one canned row-set per call to Query, in order.
type fakeQuerier struct {
	results [][]bool
	calls   int
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	res := f.results[f.calls]
	f.calls++
	return &fakeRows{vals: res}, nil
}

func TestUpsertGameCountsUpdateNotInsert(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{{false}}} // inserted=false -> counted as updated
	n, err := UpsertGame(context.Background(), q, model.Game{GameID: "0022300123"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestUpsertGameDoesNotCountFreshInsert(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{{true}}} // inserted=true -> not counted as updated
	n, err := UpsertGame(context.Background(), q, model.Game{GameID: "0022300123"})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestUpsertGameNoRowsReturnedMeansNoop(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{{}}} // diff-aware WHERE filtered the row out entirely
	n, err := UpsertGame(context.Background(), q, model.Game{GameID: "0022300123"})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
