// Package preprocess applies the safe scalar coercion pass every raw
// payload goes through before extraction: numeric-looking strings become
// numbers, clock-looking strings stay strings, and game-ID-shaped digit
// strings are never coerced regardless of what they look like, so leading
// zeros in game IDs survive untouched.
package preprocess

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	clockLike   = regexp.MustCompile(`^\d{1,2}:[0-5]\d(\.\d{1,3})?$`)
	isoDuration = regexp.MustCompile(`^PT\d+M\d+(\.\d{1,3})?S$`)
	numericRe   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
)

var idKeys = map[string]bool{
	"GAME_ID": true,
	"GAMEID":  true,
	"ID":      true,
}

// Value walks an arbitrary JSON-shaped value (map[string]interface{},
// []interface{}, or scalar) recursively, coercing numeric-looking string
// scalars to int64/float64 while leaving clock-like strings and
// protected ID strings untouched.
func Value(v interface{}) interface{} {
	return walk(v, "")
}

func walk(v interface{}, key string) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = walk(val, k)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = walk(val, key)
		}
		return out
	case string:
		return coerceScalar(t, key)
	default:
		return v
	}
}

// coerceScalar applies the single-string coercion rule used both at the
// top level and defensively on each row during extraction.
func coerceScalar(s, key string) interface{} {
	if isProtectedID(key, s) {
		return s
	}
	if clockLike.MatchString(s) || isoDuration.MatchString(s) {
		return s
	}
	if numericRe.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// isProtectedID reports whether key/value names a GAME_ID/GAMEID/ID field
// holding a digit-only string of length >= 8 — such values must never be
// coerced to a number, or leading zeros would be lost.
func isProtectedID(key, value string) bool {
	if !idKeys[strings.ToUpper(key)] {
		return false
	}
	if len(value) < 8 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
