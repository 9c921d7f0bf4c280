package seasonutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromGameID(t *testing.T) {
	season, ok := FromGameID("0022300123")
	require.True(t, ok)
	require.Equal(t, "2023-24", season)
}

func TestFromGameIDRolloverYear(t *testing.T) {
	season, ok := FromGameID("0022900123")
	require.True(t, ok)
	require.Equal(t, "2029-30", season)
}

func TestFromGameIDInvalid(t *testing.T) {
	_, ok := FromGameID("not-a-game-id")
	require.False(t, ok)
}

func TestFromDate(t *testing.T) {
	season, ok := FromDate("2024-11-05")
	require.True(t, ok)
	require.Equal(t, "2024-25", season)

	season, ok = FromDate("2024-03-05")
	require.True(t, ok)
	require.Equal(t, "2023-24", season)
}

func TestDeriveSmartPrecedence(t *testing.T) {
	require.Equal(t, "2022-23", DeriveSmart("2022-23", "0022300123", "2024-11-05"))
	require.Equal(t, "2023-24", DeriveSmart("bogus", "0022300123", "2024-11-05"))
	require.Equal(t, "2024-25", DeriveSmart("", "", "2024-11-05"))
	require.Equal(t, "UNKNOWN", DeriveSmart("", "", ""))
}

func TestValidateFormat(t *testing.T) {
	require.True(t, ValidateFormat("2024-25"))
	require.False(t, ValidateFormat("2024"))
}
