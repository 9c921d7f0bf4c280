package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

func TestUpsertShotEventsSumsUpdatedAcrossRows(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{
		{false}, // row 0: updated
		{true},  // row 1: fresh insert
	}}
	shots := []model.ShotEvent{
		{GameID: "g", PlayerID: 1, Period: 1, LocX: 0, LocY: 0},
		{GameID: "g", PlayerID: 2, Period: 1, LocX: 10, LocY: 10},
	}
	n, err := UpsertShotEvents(context.Background(), q, shots)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, q.calls)
}

func TestUpsertShotEventsEmptyIsNoop(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{}}
	n, err := UpsertShotEvents(context.Background(), q, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, q.calls)
}
