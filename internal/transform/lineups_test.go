package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

func TestStartingLineupsHappyPath(t *testing.T) {
	rows := []extract.PlayerStatsRow{}
	teamID := int64(1610612738)
	for i := 1; i <= 5; i++ {
		rows = append(rows, extract.PlayerStatsRow{
			"TEAM_ID": teamID, "PLAYER_ID": int64(i), "START_POSITION": "F",
		})
	}
	rows = append(rows, extract.PlayerStatsRow{
		"TEAM_ID": teamID, "PLAYER_ID": int64(99), "START_POSITION": "",
	})

	lineups := StartingLineups("0022300123", rows)
	require.Len(t, lineups, 1)
	require.Equal(t, 1610612738, lineups[0].TeamID)
	require.Equal(t, [5]int{1, 2, 3, 4, 5}, lineups[0].PlayerIDs)
}

func TestStartingLineupsSkipsTeamsWithWrongStarterCount(t *testing.T) {
	rows := []extract.PlayerStatsRow{
		{"TEAM_ID": int64(1), "PLAYER_ID": int64(1), "START_POSITION": "G"},
		{"TEAM_ID": int64(1), "PLAYER_ID": int64(2), "START_POSITION": "F"},
	}
	require.Empty(t, StartingLineups("g", rows))
}
