package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

func TestUpsertCrosswalkCountsUpdate(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{{false}}}
	brefID := "202411050BOS"
	n, err := UpsertCrosswalk(context.Background(), q, model.GameIdCrosswalk{GameID: "g", BrefGameID: &brefID})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestUpsertInjuryStatusesSumsUpdatedAcrossRows(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{
		{false}, // row 0: updated
		{true},  // row 1: fresh insert
	}}
	statuses := []model.InjuryStatus{
		{GameID: "g", PlayerID: 1, Status: "OUT"},
		{GameID: "g", PlayerID: 2, Status: "OUT"},
	}
	n, err := UpsertInjuryStatuses(context.Background(), q, statuses)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, q.calls)
}

func TestUpsertInjuryStatusesEmptyIsNoop(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{}}
	n, err := UpsertInjuryStatuses(context.Background(), q, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, q.calls)
}
