package preprocess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueCoercesNumericStrings(t *testing.T) {
	in := map[string]interface{}{"PTS": "24", "FG_PCT": "0.486"}
	out := Value(in).(map[string]interface{})
	require.Equal(t, int64(24), out["PTS"])
	require.Equal(t, 0.486, out["FG_PCT"])
}

func TestValuePreservesGameIDLeadingZeros(t *testing.T) {
	in := map[string]interface{}{"GAME_ID": "0022300001"}
	out := Value(in).(map[string]interface{})
	require.Equal(t, "0022300001", out["GAME_ID"])
}

func TestValueCoercesShortIDLikeField(t *testing.T) {
	// len < 8 is not protected, so a short numeric ID still coerces.
	in := map[string]interface{}{"ID": "1234"}
	out := Value(in).(map[string]interface{})
	require.Equal(t, int64(1234), out["ID"])
}

func TestValuePreservesClockStrings(t *testing.T) {
	in := map[string]interface{}{"PCTIMESTRING": "11:45", "ISO": "PT11M45.00S"}
	out := Value(in).(map[string]interface{})
	require.Equal(t, "11:45", out["PCTIMESTRING"])
	require.Equal(t, "PT11M45.00S", out["ISO"])
}

func TestValueRecursesIntoSlices(t *testing.T) {
	in := []interface{}{"24", map[string]interface{}{"GAME_ID": "0022300099"}}
	out := Value(in).([]interface{})
	require.Equal(t, int64(24), out[0])
	require.Equal(t, "0022300099", out[1].(map[string]interface{})["GAME_ID"])
}

func TestValueLeavesNonNumericStringsAlone(t *testing.T) {
	in := map[string]interface{}{"DESCRIPTION": "Jump Ball"}
	out := Value(in).(map[string]interface{})
	require.Equal(t, "Jump Ball", out["DESCRIPTION"])
}
