// Package seasonutil derives and validates NBA season labels ("2024-25")
// from game IDs, explicit fields, or game dates.
package seasonutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	gameIDRe    = regexp.MustCompile(`^00[1-9](\d{2})\d{5}$`)
	seasonLabel = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidateFormat reports whether season matches "YYYY-YY".
func ValidateFormat(season string) bool {
	return seasonLabel.MatchString(season)
}

// FromGameID derives a season label from the two-digit year embedded at
// positions 3-4 of a valid game ID (e.g. "0022300123" -> "2023-24").
// Returns ("", false) if gameID does not match the expected shape.
func FromGameID(gameID string) (string, bool) {
	m := gameIDRe.FindStringSubmatch(gameID)
	if m == nil {
		return "", false
	}
	yy, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("20%02d-%02d", yy, (yy+1)%100), true
}

// FromDate derives a season label from a game date: month >= 10 starts the
// season in that year; month <= 9 means the season started the prior year.
func FromDate(gameDate string) (string, bool) {
	t, err := time.Parse("2006-01-02", gameDate)
	if err != nil {
		return "", false
	}
	year := t.Year()
	month := int(t.Month())
	start := year
	if month < 10 {
		start = year - 1
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100), true
}

// DeriveSmart resolves a season label with precedence: (1) explicit, if
// already valid; (2) from the game ID; (3) from the game date; (4) the
// literal "UNKNOWN".
func DeriveSmart(explicit, gameID, gameDate string) string {
	if ValidateFormat(explicit) {
		return explicit
	}
	if s, ok := FromGameID(gameID); ok {
		return s
	}
	if s, ok := FromDate(gameDate); ok {
		return s
	}
	return "UNKNOWN"
}
