package statsapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_ID", "SEASON_TYPE_ID"],
			"rowSet": [
				["0022300001", "2"],
				["0022300002"]
			]
		}
	],
	"parameters": {"GameID": "0022300001"}
}`

func TestParseAndResultSetByName(t *testing.T) {
	resp, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	rs, ok := resp.ResultSetByName("GameHeader")
	require.True(t, ok)
	require.Equal(t, []string{"GAME_ID", "SEASON_TYPE_ID"}, rs.Headers)

	_, ok = resp.ResultSetByName("NoSuchSet")
	require.False(t, ok)
}

func TestRowsSkipsShortRows(t *testing.T) {
	resp, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)
	rs, _ := resp.ResultSetByName("GameHeader")

	rows := rs.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "0022300001", rows[0]["GAME_ID"])
	require.Equal(t, "2", rows[0]["SEASON_TYPE_ID"])
}

func TestResultSetByNameOnNilResponse(t *testing.T) {
	var resp *Response
	_, ok := resp.ResultSetByName("anything")
	require.False(t, ok)
}
