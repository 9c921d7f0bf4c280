package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

func TestUpsertRefAssignmentsCountsUpdate(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{{false}}}
	n, err := UpsertRefAssignments(context.Background(), q, []model.RefAssignment{
		{GameID: "g", RefereeNameSlug: "joe-ref", RefereeName: "Joe Ref", Role: model.RoleCrewChief},
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestUpsertRefAlternatesSumsUpdatedAcrossRows(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{
		{false}, // row 0: updated
		{true},  // row 1: fresh insert
	}}
	alternates := []model.RefAlternate{
		{GameID: "g", RefereeNameSlug: "alt-one", RefereeName: "Alt One"},
		{GameID: "g", RefereeNameSlug: "alt-two", RefereeName: "Alt Two"},
	}
	n, err := UpsertRefAlternates(context.Background(), q, alternates)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, q.calls)
}

func TestUpsertRefAlternatesEmptyIsNoop(t *testing.T) {
	q := &fakeQuerier{results: [][]bool{}}
	n, err := UpsertRefAlternates(context.Background(), q, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, q.calls)
}
