package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/albapepper/scoracle-ingest/internal/httpfetch"
)

const baseURL = "https://stats.nba.com/stats/"

// Client fetches the Tier A Stats API endpoints the harvester needs.
type Client struct {
	fetcher *httpfetch.Fetcher
}

// NewClient builds a Client whose requests carry fetcher's headers and are
// gated by fetcher's shared rate limiter/retry policy. The client adds no
// headers of its own; in particular no JSON Accept header is set.
func NewClient(fetcher *httpfetch.Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Response, []byte, error) {
	body, _, err := c.fetcher.Get(ctx, baseURL+endpoint, params)
	if err != nil {
		return nil, nil, err
	}
	resp, err := Parse(body)
	if err != nil {
		return nil, body, fmt.Errorf("parse %s: %w", endpoint, err)
	}
	return resp, body, nil
}

// Scoreboard fetches scoreboardv2 for a date (YYYY-MM-DD).
func (c *Client) Scoreboard(ctx context.Context, date string) (*Response, []byte, error) {
	params := url.Values{
		"GameDate":  {date},
		"LeagueID":  {"00"},
		"DayOffset": {"0"},
	}
	return c.get(ctx, "scoreboardv2", params)
}

// BoxscoreSummary fetches boxscoresummaryv2 for a game ID.
func (c *Client) BoxscoreSummary(ctx context.Context, gameID string) (*Response, []byte, error) {
	return c.get(ctx, "boxscoresummaryv2", url.Values{"GameID": {gameID}})
}

// BoxscoreTraditional fetches boxscoretraditionalv2 for a game ID.
func (c *Client) BoxscoreTraditional(ctx context.Context, gameID string) (*Response, []byte, error) {
	params := url.Values{
		"GameID":       {gameID},
		"StartPeriod":  {"0"},
		"EndPeriod":    {"10"},
		"StartRange":   {"0"},
		"EndRange":     {"28800"},
		"RangeType":    {"0"},
	}
	return c.get(ctx, "boxscoretraditionalv2", params)
}

// PlayByPlay fetches playbyplayv2 for a game ID.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) (*Response, []byte, error) {
	params := url.Values{
		"GameID":      {gameID},
		"StartPeriod": {"0"},
		"EndPeriod":   {"10"},
	}
	return c.get(ctx, "playbyplayv2", params)
}

// ShotChart performs the fallback-and-dedupe shot chart fetch: a
// game-scoped call first; on failure, fetches per team ID and
// concatenates+dedupes rows on the composite key spec.md names, including
// EVENT_NUM in the key when present (resolving the dedupe-sufficiency
// Open Question).
func (c *Client) ShotChart(ctx context.Context, gameID string, teamIDs []int) (*Response, error) {
	resp, _, err := c.get(ctx, "shotchartdetail", shotChartParams(gameID, 0))
	if err == nil {
		return resp, nil
	}

	var merged []map[string]interface{}
	seen := map[string]bool{}
	var headers []string
	for _, teamID := range teamIDs {
		teamResp, _, teamErr := c.get(ctx, "shotchartdetail", shotChartParams(gameID, teamID))
		if teamErr != nil {
			continue
		}
		rs, ok := teamResp.ResultSetByName("Shot_Chart_Detail")
		if !ok {
			continue
		}
		if headers == nil {
			headers = rs.Headers
		}
		for _, row := range rs.Rows() {
			key := shotDedupeKey(row)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, row)
		}
	}
	if len(merged) == 0 {
		return nil, err
	}
	return rowsToResponse("Shot_Chart_Detail", headers, merged), nil
}

func shotChartParams(gameID string, teamID int) url.Values {
	v := url.Values{
		"GameID":           {gameID},
		"ContextMeasure":   {"FGA"},
		"PlayerID":         {"0"},
		"Outcome":          {""},
		"Location":         {""},
		"Month":            {"0"},
		"SeasonSegment":    {""},
		"DateFrom":         {""},
		"DateTo":           {""},
		"OpponentTeamID":   {"0"},
		"VsConference":     {""},
		"VsDivision":       {""},
		"RookieYear":       {""},
		"GameSegment":      {""},
		"Period":           {"0"},
		"LastNGames":       {"0"},
		"AheadBehind":      {""},
		"ContextFilter":    {""},
		"ClutchTime":       {""},
		"SeasonType":       {"Regular Season"},
	}
	if teamID != 0 {
		v.Set("TeamID", strconv.Itoa(teamID))
	} else {
		v.Set("TeamID", "0")
	}
	return v
}

// shotDedupeKey builds the composite dedupe key over
// (GAME_ID, PLAYER_ID, PERIOD, MINUTES_REMAINING, SECONDS_REMAINING,
// LOC_X, LOC_Y[, EVENT_NUM]).
func shotDedupeKey(row map[string]interface{}) string {
	fields := []string{"GAME_ID", "PLAYER_ID", "PERIOD", "MINUTES_REMAINING", "SECONDS_REMAINING", "LOC_X", "LOC_Y"}
	key := ""
	for _, f := range fields {
		key += fmt.Sprintf("%v|", row[f])
	}
	if eventNum, ok := row["EVENT_NUM"]; ok {
		key += fmt.Sprintf("%v", eventNum)
	}
	return key
}

func rowsToResponse(name string, headers []string, rows []map[string]interface{}) *Response {
	rowSet := make([][]interface{}, len(rows))
	for i, row := range rows {
		r := make([]interface{}, len(headers))
		for j, h := range headers {
			r[j] = row[h]
		}
		rowSet[i] = r
	}
	return &Response{ResultSets: []ResultSet{{Name: name, Headers: headers, RowSet: rowSet}}}
}
