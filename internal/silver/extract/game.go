package extract

import (
	"fmt"

	"github.com/albapepper/scoracle-ingest/internal/preprocess"
	"github.com/albapepper/scoracle-ingest/internal/provider/statsapi"
)

// GameMeta is the neutral record extracted from a boxscore summary
// response, field names matching the GameSummary result set's headers.
type GameMeta map[string]interface{}

// GameID resolves the game ID with priority: (1) summary.parameters.GameID;
// (2) boxscore.parameters.GameID; (3) GameSummary.GAME_ID. A missing game
// ID at every tier is a hard error — the extractor has nothing to key on.
func GameID(summary, boxscore *statsapi.Response) (string, error) {
	if id, ok := paramGameID(summary); ok {
		return id, nil
	}
	if id, ok := paramGameID(boxscore); ok {
		return id, nil
	}
	if summary != nil {
		if rs, ok := summary.ResultSetByName("GameSummary"); ok {
			rows := rs.Rows()
			if len(rows) > 0 {
				if id, ok := rows[0]["GAME_ID"].(string); ok && id != "" {
					return id, nil
				}
			}
		}
	}
	return "", fmt.Errorf("extract game_id: no GameID in parameters or GameSummary")
}

func paramGameID(resp *statsapi.Response) (string, bool) {
	if resp == nil || resp.Parameters == nil {
		return "", false
	}
	v, ok := resp.Parameters["GameID"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// GameMetaFromSummary extracts the GameSummary row as a neutral record.
func GameMetaFromSummary(summary *statsapi.Response) (GameMeta, bool) {
	rs, ok := summary.ResultSetByName("GameSummary")
	if !ok {
		return nil, false
	}
	rows := rs.Rows()
	if len(rows) == 0 {
		return nil, false
	}
	row := preprocess.Value(rows[0]).(map[string]interface{})
	return GameMeta(row), true
}

// LineScoreRows extracts the LineScore result set rows (one per team),
// used by the outcome extractor.
func LineScoreRows(summary *statsapi.Response) []map[string]interface{} {
	rs, ok := summary.ResultSetByName("LineScore")
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(rs.Rows()))
	for _, row := range rs.Rows() {
		out = append(out, preprocess.Value(row).(map[string]interface{}))
	}
	return out
}

// InactivePlayerRow is one row of the boxscore summary's InactivePlayers
// result set — a player who dressed but did not play, the only pregame
// availability signal the stats API itself carries.
type InactivePlayerRow map[string]interface{}

// InactivePlayers extracts the InactivePlayers result set, if present.
// Absence of the result set (older payloads, or a game with no
// inactives reported) is not an error — it yields zero rows.
func InactivePlayers(summary *statsapi.Response) []InactivePlayerRow {
	rs, ok := summary.ResultSetByName("InactivePlayers")
	if !ok {
		return nil
	}
	rows := rs.Rows()
	out := make([]InactivePlayerRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, InactivePlayerRow(preprocessRow(row)))
	}
	return out
}
