package datenorm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToDateStringKnownLayouts(t *testing.T) {
	cases := map[string]string{
		"2024-11-05":                  "2024-11-05",
		"2024-11-05T19:30:00":         "2024-11-05",
		"2024-11-05T19:30:00Z":        "2024-11-05",
		"11/05/2024":                  "2024-11-05",
		"November 5, 2024":            "2024-11-05",
	}
	for raw, want := range cases {
		got, ok := ToDateString(raw)
		require.True(t, ok, "raw=%q", raw)
		require.Equal(t, want, got, "raw=%q", raw)
	}
}

func TestToDateStringUnrecognized(t *testing.T) {
	_, ok := ToDateString("not a date")
	require.False(t, ok)
}

func TestResolveGameDatePrecedence(t *testing.T) {
	require.Equal(t, "2024-11-05", ResolveGameDate("2024-11-05", "2024-11-06"))
	require.Equal(t, "2024-11-06", ResolveGameDate("garbage", "2024-11-06"))
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), ResolveGameDate("garbage", "also garbage"))
}
