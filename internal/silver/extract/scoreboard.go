// Package extract maps raw Stats API payloads into neutral record maps,
// keyed by canonical field name, ready for the transform stage. Column
// access is always by header name; a row with fewer fields than headers
// is skipped by statsapi.ResultSet.Rows before it ever reaches here.
package extract

import (
	"fmt"

	"github.com/albapepper/scoracle-ingest/internal/preprocess"
	"github.com/albapepper/scoracle-ingest/internal/provider/statsapi"
)

// GameHeaderRow is one row of the scoreboard's GameHeader result set.
type GameHeaderRow struct {
	GameID       string
	SeasonTypeID string
	HasSeasonType bool
}

// GameIDs extracts candidate game IDs from a scoreboardv2 response,
// keeping only rows whose SEASON_TYPE_ID equals seasonTypeFilter or reads
// "Regular Season" when that column is present and seasonTypeFilter is
// non-empty. excludedCount reports how
// many rows were filtered out, for the harvester to log.
func GameIDs(resp *statsapi.Response, seasonTypeFilter string) (ids []string, excludedCount int) {
	rs, ok := resp.ResultSetByName("GameHeader")
	if !ok {
		return nil, 0
	}
	for _, row := range rs.Rows() {
		row = preprocess.Value(row).(map[string]interface{})
		gameID, _ := row["GAME_ID"].(string)
		if gameID == "" {
			continue
		}
		seasonType, hasType := seasonTypeValue(row)
		if hasType && seasonTypeFilter != "" && !matchesSeasonType(seasonType, seasonTypeFilter) {
			excludedCount++
			continue
		}
		ids = append(ids, gameID)
	}
	return ids, excludedCount
}

func seasonTypeValue(row map[string]interface{}) (string, bool) {
	v, ok := row["SEASON_TYPE_ID"]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

func matchesSeasonType(value, filter string) bool {
	return value == filter || value == "Regular Season"
}
