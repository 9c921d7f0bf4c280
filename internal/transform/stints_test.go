package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

func intp(v int) *int { return &v }

func TestLineupStintsNoSubstitutionsClosesAtPeriodEnd(t *testing.T) {
	starters := []model.StartingLineup{
		{GameID: "g", TeamID: 1, PlayerIDs: [5]int{1, 2, 3, 4, 5}},
	}
	events := []model.PbpEvent{
		{Period: 1, ActionType: intp(1), SecondsElapsed: 10},
	}
	stints := LineupStints("g", events, starters)
	require.Len(t, stints, 1)
	require.Equal(t, 1, stints[0].TeamID)
	require.Equal(t, 720.0, stints[0].SecondsPlayed)
	require.Equal(t, [5]int{1, 2, 3, 4, 5}, stints[0].LineupPlayerIDs)
}

func TestLineupStintsSubstitutionOpensNewStint(t *testing.T) {
	starters := []model.StartingLineup{
		{GameID: "g", TeamID: 1, PlayerIDs: [5]int{1, 2, 3, 4, 5}},
	}
	events := []model.PbpEvent{
		{Period: 1, ActionType: intp(8), TeamID: intp(1), Player1ID: intp(5), Player2ID: intp(6), SecondsElapsed: 300},
	}
	stints := LineupStints("g", events, starters)
	require.Len(t, stints, 2)
	require.Equal(t, [5]int{1, 2, 3, 4, 5}, stints[0].LineupPlayerIDs)
	require.Equal(t, 300.0, stints[0].SecondsPlayed)
	require.Equal(t, [5]int{1, 2, 3, 4, 6}, stints[1].LineupPlayerIDs)
	require.Equal(t, 420.0, stints[1].SecondsPlayed)
}

func TestReplacePlayerKeepsLineupSorted(t *testing.T) {
	lineup := [5]int{1, 2, 3, 4, 5}
	out := replacePlayer(lineup, 3, 9)
	require.Equal(t, [5]int{1, 2, 4, 5, 9}, out)
}
