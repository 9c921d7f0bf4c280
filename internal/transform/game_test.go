package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

func TestGameHappyPath(t *testing.T) {
	meta := extract.GameMeta{
		"GAME_ID":                "0022300123",
		"GAME_DATE_EST":          "2024-11-05",
		"GAME_STATUS_TEXT":       "Final",
		"HOME_TEAM_ID":           int64(1610612738),
		"VISITOR_TEAM_ID":        int64(1610612747),
		"ARENA_NAME":             "TD Garden",
		"ATTENDANCE":             int64(19156),
	}

	g, err := Game(meta)
	require.NoError(t, err)
	require.Equal(t, "0022300123", g.GameID)
	require.Equal(t, "2023-24", g.Season)
	require.Equal(t, "2024-11-05", g.GameDate)
	require.Equal(t, 1610612738, g.HomeTeamID)
	require.Equal(t, 1610612747, g.AwayTeamID)
	require.Equal(t, "FINAL", g.Status)
	require.Equal(t, "TD Garden", g.ArenaName)
	require.NotNil(t, g.Attendance)
	require.Equal(t, 19156, *g.Attendance)
}

func TestGameInvalidGameIDFormat(t *testing.T) {
	meta := extract.GameMeta{"GAME_ID": "not-a-game-id"}
	_, err := Game(meta)
	require.Error(t, err)
}

func TestGameRejectsEqualTeamIDs(t *testing.T) {
	meta := extract.GameMeta{
		"GAME_ID":         "0022300123",
		"HOME_TEAM_ID":    int64(1610612738),
		"VISITOR_TEAM_ID": int64(1610612738),
	}
	_, err := Game(meta)
	require.Error(t, err)
}

func TestGameFallsBackToTricodeCrosswalk(t *testing.T) {
	meta := extract.GameMeta{
		"GAME_ID":                  "0022300123",
		"HOME_TEAM_ABBREVIATION":   "BOS",
		"VISITOR_TEAM_ABBREVIATION": "LAL",
	}
	g, err := Game(meta)
	require.NoError(t, err)
	require.Equal(t, 1610612738, g.HomeTeamID)
	require.Equal(t, 1610612747, g.AwayTeamID)
}

func TestNormalizeStatusDefaultsToScheduled(t *testing.T) {
	require.Equal(t, "SCHEDULED", normalizeStatus(""))
	require.Equal(t, "SCHEDULED", normalizeStatus("unknown status"))
	require.Equal(t, "FINAL", normalizeStatus("F"))
	require.Equal(t, "POSTPONED", normalizeStatus("ppd"))
}
