package teamcrosswalk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCanonical(t *testing.T) {
	id, err := Resolve("BOS", "")
	require.NoError(t, err)
	require.Equal(t, 1610612738, id)
}

func TestResolveAliasesMatchCanonical(t *testing.T) {
	cases := map[string]string{
		"BKN": "BRK",
		"PHO": "PHX",
		"NOH": "NOP",
		"CHO": "CHA",
	}
	for alias, canonical := range cases {
		aliasID, err := Resolve(alias, "")
		require.NoError(t, err)
		canonicalID, err := Resolve(canonical, "")
		require.NoError(t, err)
		require.Equal(t, canonicalID, aliasID, "alias %s should resolve to canonical %s", alias, canonical)
	}
}

func TestResolveNormalizesCase(t *testing.T) {
	id, err := Resolve(" bos ", "")
	require.NoError(t, err)
	require.Equal(t, 1610612738, id)
}

func TestResolveUnknownTricodeIncludesGameID(t *testing.T) {
	_, err := Resolve("ZZZ", "0022300001")
	require.Error(t, err)
	require.Contains(t, err.Error(), "0022300001")
	require.Contains(t, err.Error(), "ZZZ")
}

func TestTricodeReverseLookup(t *testing.T) {
	tricode, ok := Tricode(1610612738)
	require.True(t, ok)
	require.Equal(t, "BOS", tricode)
}

func TestTricodeUnknownTeamID(t *testing.T) {
	_, ok := Tricode(0)
	require.False(t, ok)
}

func TestBrefGameID(t *testing.T) {
	id, ok := BrefGameID("2024-11-05", 1610612738)
	require.True(t, ok)
	require.Equal(t, "202411050BOS", id)
}

func TestBrefGameIDUnknownTeam(t *testing.T) {
	_, ok := BrefGameID("2024-11-05", 0)
	require.False(t, ok)
}
