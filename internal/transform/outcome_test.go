package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeHappyPath(t *testing.T) {
	rows := []map[string]interface{}{
		{"TEAM_ID": int64(1610612738), "PTS": int64(110)},
		{"TEAM_ID": int64(1610612747), "PTS": int64(102)},
	}
	out, ok := Outcome("0022300123", 1610612738, 1610612747, rows)
	require.True(t, ok)
	require.Equal(t, 110, out.HomePoints)
	require.Equal(t, 102, out.AwayPoints)
	require.Equal(t, 212, out.TotalPoints)
	require.True(t, out.HomeWin)
	require.Equal(t, 8, out.Margin)
}

func TestOutcomeMissingTeamReturnsFalse(t *testing.T) {
	rows := []map[string]interface{}{
		{"TEAM_ID": int64(1610612738), "PTS": int64(110)},
	}
	_, ok := Outcome("0022300123", 1610612738, 1610612747, rows)
	require.False(t, ok)
}

func TestOutcomeAwayWin(t *testing.T) {
	rows := []map[string]interface{}{
		{"TEAM_ID": int64(1), "PTS": int64(90)},
		{"TEAM_ID": int64(2), "PTS": int64(100)},
	}
	out, ok := Outcome("g", 1, 2, rows)
	require.True(t, ok)
	require.False(t, out.HomeWin)
	require.Equal(t, -10, out.Margin)
}
