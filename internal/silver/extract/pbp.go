package extract

import "github.com/albapepper/scoracle-ingest/internal/provider/statsapi"

// PbpRow is one play-by-play row, field names matching the PlayByPlay
// result set's headers, preprocessed once at extraction time.
type PbpRow map[string]interface{}

// PBP extracts every row of the PlayByPlay result set.
func PBP(resp *statsapi.Response) []PbpRow {
	rs, ok := resp.ResultSetByName("PlayByPlay")
	if !ok {
		return nil
	}
	rows := rs.Rows()
	out := make([]PbpRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, PbpRow(preprocessRow(row)))
	}
	return out
}
