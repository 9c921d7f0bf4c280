package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

func TestPBPAssignsSequentialIndexesSkippingBadRows(t *testing.T) {
	rows := []extract.PbpRow{
		{"PERIOD": int64(1), "PCTIMESTRING": "11:45", "EVENTMSGTYPE": int64(1), "HOMEDESCRIPTION": "Jump Ball"},
		{"PERIOD": int64(1), "PCTIMESTRING": "garbage clock"}, // skipped
		{"PERIOD": int64(1), "PCTIMESTRING": "10:02", "EVENTMSGTYPE": int64(2)},
	}

	events := PBP("0022300123", rows)
	require.Len(t, events, 2)
	require.Equal(t, 0, events[0].EventIdx)
	require.Equal(t, 1, events[1].EventIdx)
	require.Equal(t, "Jump Ball", events[0].Description)
	require.Equal(t, "0022300123", events[0].GameID)
}

func TestPBPPopulatesOptionalPointers(t *testing.T) {
	rows := []extract.PbpRow{
		{
			"PERIOD": int64(2), "PCTIMESTRING": "5:00",
			"PLAYER1_TEAM_ID": int64(1610612738), "PLAYER1_ID": int64(201),
			"PLAYER2_ID": int64(202), "EVENTMSGTYPE": int64(8), "EVENTMSGACTIONTYPE": int64(0),
		},
	}
	events := PBP("0022300123", rows)
	require.Len(t, events, 1)
	ev := events[0]
	require.NotNil(t, ev.TeamID)
	require.Equal(t, 1610612738, *ev.TeamID)
	require.NotNil(t, ev.Player1ID)
	require.Equal(t, 201, *ev.Player1ID)
	require.NotNil(t, ev.Player2ID)
	require.Equal(t, 202, *ev.Player2ID)
	require.NotNil(t, ev.ActionType)
	require.Equal(t, 8, *ev.ActionType)
}

func TestPBPMissingPeriodIsSkipped(t *testing.T) {
	rows := []extract.PbpRow{{"PCTIMESTRING": "5:00"}}
	events := PBP("0022300123", rows)
	require.Empty(t, events)
}
