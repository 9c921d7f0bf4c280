package extract

import "github.com/albapepper/scoracle-ingest/internal/provider/statsapi"

// ShotRow is one shot-chart row, field names matching the
// Shot_Chart_Detail result set's headers.
type ShotRow map[string]interface{}

// Shots extracts every row of the Shot_Chart_Detail result set.
func Shots(resp *statsapi.Response) []ShotRow {
	rs, ok := resp.ResultSetByName("Shot_Chart_Detail")
	if !ok {
		return nil
	}
	rows := rs.Rows()
	out := make([]ShotRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ShotRow(preprocessRow(row)))
	}
	return out
}
