// Package teamcrosswalk resolves team tricodes to canonical team IDs,
// accounting for historical relocations/rebrands via a small alias table.
// The index is a process-lifetime singleton built once on first use.
package teamcrosswalk

import (
	"fmt"
	"strings"
	"sync"
)

// canonicalTeams maps the 30 current NBA tricodes to their canonical
// team IDs (NBA.com numeric team IDs).
var canonicalTeams = map[string]int{
	"ATL": 1610612737, "BOS": 1610612738, "BRK": 1610612751, "CHA": 1610612766,
	"CHI": 1610612741, "CLE": 1610612739, "DAL": 1610612742, "DEN": 1610612743,
	"DET": 1610612765, "GSW": 1610612744, "HOU": 1610612745, "IND": 1610612754,
	"LAC": 1610612746, "LAL": 1610612747, "MEM": 1610612763, "MIA": 1610612748,
	"MIL": 1610612749, "MIN": 1610612750, "NOP": 1610612740, "NYK": 1610612752,
	"OKC": 1610612760, "ORL": 1610612753, "PHI": 1610612755, "PHX": 1610612756,
	"POR": 1610612757, "SAC": 1610612758, "SAS": 1610612759, "TOR": 1610612761,
	"UTA": 1610612762, "WAS": 1610612764,
}

// aliases maps a historical or alternate tricode to its canonical form.
var aliases = map[string]string{
	"BKN": "BRK",
	"PHO": "PHX",
	"NOH": "NOP",
	"CHO": "CHA",
}

var (
	once      sync.Once
	teamIndex map[string]int
	reverse   map[int]string
)

// index builds (once) the merged canonical+alias lookup table.
func index() map[string]int {
	once.Do(func() {
		teamIndex = make(map[string]int, len(canonicalTeams)+len(aliases))
		reverse = make(map[int]string, len(canonicalTeams))
		for tricode, id := range canonicalTeams {
			teamIndex[tricode] = id
			reverse[id] = tricode
		}
		for alias, canonical := range aliases {
			if id, ok := canonicalTeams[canonical]; ok {
				teamIndex[alias] = id
			}
		}
	})
	return teamIndex
}

// Tricode reverse-looks-up the canonical tricode for a team ID. The
// canonical form doubles as basketball-reference's own tricode (that's
// why the alias table above maps stats.nba.com-style codes like BKN/PHO
// onto it), so callers building a bref-style game ID can use this
// directly without a second crosswalk.
func Tricode(teamID int) (string, bool) {
	index() // ensure reverse is built
	tricode, ok := reverse[teamID]
	return tricode, ok
}

// BrefGameID derives the basketball-reference-style game ID for a game:
// the date with dashes stripped, a literal "0", and the home team's
// canonical tricode (which doubles as bref's own tricode scheme) —
// e.g. 2024-11-05 + BOS -> 202411050BOS. Returns false when homeTeamID
// isn't in the canonical table.
func BrefGameID(date string, homeTeamID int) (string, bool) {
	tricode, ok := Tricode(homeTeamID)
	if !ok {
		return "", false
	}
	compact := strings.ReplaceAll(date, "-", "")
	return compact + "0" + tricode, true
}

// Resolve normalizes tricode (trim, upper) and looks up its team ID.
// gameID, when known, is included in the error message to aid debugging a
// batch ingest that hit an unrecognized tricode.
func Resolve(tricode, gameID string) (int, error) {
	normalized := strings.ToUpper(strings.TrimSpace(tricode))
	id, ok := index()[normalized]
	if !ok {
		if gameID != "" {
			return 0, fmt.Errorf("unknown tricode %q (game %s)", tricode, gameID)
		}
		return 0, fmt.Errorf("unknown tricode %q", tricode)
	}
	return id, nil
}
