package clockutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseToSecondsColonForm(t *testing.T) {
	seconds, ok := ParseToSeconds("24:49")
	require.True(t, ok)
	require.Equal(t, 1489.0, seconds)
}

func TestParseToSecondsColonFormWithFraction(t *testing.T) {
	seconds, ok := ParseToSeconds("0:00.3")
	require.True(t, ok)
	require.InDelta(t, 0.3, seconds, 1e-9)
}

func TestParseToSecondsISOForm(t *testing.T) {
	seconds, ok := ParseToSeconds("PT11M45.00S")
	require.True(t, ok)
	require.Equal(t, 705.0, seconds)
}

func TestParseToSecondsInvalid(t *testing.T) {
	_, ok := ParseToSeconds("not a clock")
	require.False(t, ok)
}

func TestPeriodLengthSeconds(t *testing.T) {
	require.Equal(t, 720.0, PeriodLengthSeconds(1))
	require.Equal(t, 720.0, PeriodLengthSeconds(4))
	require.Equal(t, 300.0, PeriodLengthSeconds(5))
	require.Equal(t, 300.0, PeriodLengthSeconds(9))
}

func TestSecondsElapsed(t *testing.T) {
	require.Equal(t, 231.0, SecondsElapsed(489, 1))
	require.Equal(t, 0.0, SecondsElapsed(720, 1))
}

func TestValidateFormat(t *testing.T) {
	require.NoError(t, ValidateFormat("5:30"))
	require.Error(t, ValidateFormat("garbage"))
}
