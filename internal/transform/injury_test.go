package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

func TestInjuryStatusesMapsInactiveRowsToOut(t *testing.T) {
	rows := []extract.InactivePlayerRow{
		{"PLAYER_ID": int64(201)},
		{"PLAYER_ID": int64(202)},
	}
	statuses := InjuryStatuses("0022300123", rows)
	require.Len(t, statuses, 2)
	require.Equal(t, "OUT", statuses[0].Status)
	require.Equal(t, 201, statuses[0].PlayerID)
}

func TestInjuryStatusesSkipsRowsMissingPlayerID(t *testing.T) {
	rows := []extract.InactivePlayerRow{{"TEAM_ID": int64(1)}}
	require.Empty(t, InjuryStatuses("g", rows))
}
