// Package datenorm normalizes heterogeneous upstream date representations
// to a canonical YYYY-MM-DD string.
package datenorm

import "time"

var layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"January 2, 2006",
}

// ToDateString parses raw using a set of known upstream layouts and
// returns its date part as YYYY-MM-DD. Returns ("", false) if raw matches
// none of them.
func ToDateString(raw string) (string, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// ResolveGameDate applies the local > UTC-date-part > today precedence
// spec.md §4.8 requires.
func ResolveGameDate(local, utc string) string {
	if d, ok := ToDateString(local); ok {
		return d
	}
	if d, ok := ToDateString(utc); ok {
		return d
	}
	return time.Now().UTC().Format("2006-01-02")
}
