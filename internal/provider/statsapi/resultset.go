// Package statsapi is the NBA Stats API source client: scoreboard, boxscore
// summary/traditional, play-by-play, and shot chart, each built on the
// shared retrying Fetcher.
package statsapi

import "encoding/json"

// ResultSet is one named table within a raw Stats API response.
type ResultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// Response is the common `{resultSets: [...]}` envelope every Stats API
// endpoint returns.
type Response struct {
	ResultSets []ResultSet             `json:"resultSets"`
	Parameters map[string]interface{}  `json:"parameters"`
}

// Parse decodes raw JSON bytes into a Response.
func Parse(raw []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResultSetByName returns the named result set, or (nil, false) if absent.
func (r *Response) ResultSetByName(name string) (*ResultSet, bool) {
	if r == nil {
		return nil, false
	}
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], true
		}
	}
	return nil, false
}

// Rows converts the result set's headers+rowSet into neutral maps keyed by
// header name. Rows with fewer fields than headers are skipped.
func (rs *ResultSet) Rows() []map[string]interface{} {
	if rs == nil {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		if len(row) < len(rs.Headers) {
			continue
		}
		m := make(map[string]interface{}, len(rs.Headers))
		for i, h := range rs.Headers {
			m[h] = row[i]
		}
		out = append(out, m)
	}
	return out
}
