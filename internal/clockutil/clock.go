// Package clockutil parses NBA Stats API clock strings and derives
// elapsed/remaining seconds within a period.
package clockutil

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	colonClock = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)(?:\.(\d{1,3}))?$`)
	isoClock   = regexp.MustCompile(`^PT(\d+)M(\d+(?:\.\d{1,3})?)S$`)
)

// ParseToSeconds parses a clock string in either "M:SS[.fff]" or
// "PTmMs[.fff]S" form and returns the seconds remaining in the period.
// Returns (0, false) if the string matches neither format.
func ParseToSeconds(clock string) (float64, bool) {
	if m := colonClock.FindStringSubmatch(clock); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		frac := parseFrac(m[3])
		return float64(minutes*60+seconds) + frac, true
	}
	if m := isoClock.FindStringSubmatch(clock); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		return float64(minutes*60) + seconds, true
	}
	return 0, false
}

func parseFrac(digits string) float64 {
	if digits == "" {
		return 0
	}
	f, err := strconv.ParseFloat("0."+digits, 64)
	if err != nil {
		return 0
	}
	return f
}

// PeriodLengthSeconds returns the regulation length of period: 720s for
// periods 1-4, 300s for any overtime period (>= 5).
func PeriodLengthSeconds(period int) float64 {
	if period <= 4 {
		return 720
	}
	return 300
}

// SecondsElapsed derives the elapsed time in the period from the seconds
// remaining on the clock, flipping sign once as a data-consistency
// safety if the subtraction would otherwise go negative.
func SecondsElapsed(clockSeconds float64, period int) float64 {
	elapsed := PeriodLengthSeconds(period) - clockSeconds
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed
}

// ValidateFormat reports an error describing why clock is not a
// recognized clock string, or nil if it parses.
func ValidateFormat(clock string) error {
	if _, ok := ParseToSeconds(clock); !ok {
		return fmt.Errorf("invalid clock format: %q", clock)
	}
	return nil
}
