package extract

import "github.com/albapepper/scoracle-ingest/internal/provider/statsapi"

// PlayerStatsRow is one row of the boxscore traditional PlayerStats
// result set.
type PlayerStatsRow map[string]interface{}

// PlayerStats extracts every row of the PlayerStats result set from a
// boxscoretraditionalv2 response.
func PlayerStats(resp *statsapi.Response) []PlayerStatsRow {
	rs, ok := resp.ResultSetByName("PlayerStats")
	if !ok {
		return nil
	}
	rows := rs.Rows()
	out := make([]PlayerStatsRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, PlayerStatsRow(preprocessRow(row)))
	}
	return out
}

// OfficialRow is one row of the Officials result set.
type OfficialRow map[string]interface{}

// Officials extracts every row of the boxscore summary's Officials result
// set.
func Officials(resp *statsapi.Response) []OfficialRow {
	rs, ok := resp.ResultSetByName("Officials")
	if !ok {
		return nil
	}
	rows := rs.Rows()
	out := make([]OfficialRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, OfficialRow(preprocessRow(row)))
	}
	return out
}
