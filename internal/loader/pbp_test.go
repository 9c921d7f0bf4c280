package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

func TestUpsertPbpEventsSumsUpdatedAcrossRows(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{
		{false}, // row 0: updated
		{true},  // row 1: fresh insert
	}}
	events := []model.PbpEvent{
		{GameID: "g", EventIdx: 0},
		{GameID: "g", EventIdx: 1},
	}
	n, err := UpsertPbpEvents(context.Background(), q, events)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, q.calls)
}

func TestUpsertPbpEventsEmptyIsNoop(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{}}
	n, err := UpsertPbpEvents(context.Background(), q, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, q.calls)
}
