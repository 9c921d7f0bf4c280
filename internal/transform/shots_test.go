package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

func TestShotsHappyPath(t *testing.T) {
	rows := []extract.ShotRow{
		{"PLAYER_ID": int64(201), "PERIOD": int64(1), "LOC_X": int64(10), "LOC_Y": int64(20), "TEAM_ID": int64(1610612738), "SHOT_MADE_FLAG": int64(1), "EVENT_NUM": int64(55)},
	}
	shots := Shots("0022300123", rows)
	require.Len(t, shots, 1)
	s := shots[0]
	require.Equal(t, 201, s.PlayerID)
	require.Equal(t, 1, s.ShotMadeFlag)
	require.NotNil(t, s.EventNum)
	require.Equal(t, 55, *s.EventNum)
}

func TestShotsSkipsMissingRequiredFields(t *testing.T) {
	rows := []extract.ShotRow{
		{"PERIOD": int64(1), "LOC_X": int64(10), "LOC_Y": int64(20)}, // no PLAYER_ID
	}
	require.Empty(t, Shots("0022300123", rows))
}

func TestShotsNormalizesMadeFlagToZeroOrOne(t *testing.T) {
	rows := []extract.ShotRow{
		{"PLAYER_ID": int64(1), "PERIOD": int64(1), "LOC_X": int64(0), "LOC_Y": int64(0), "SHOT_MADE_FLAG": int64(7)},
	}
	shots := Shots("g", rows)
	require.Equal(t, 1, shots[0].ShotMadeFlag)
}
