package transform

import (
	"github.com/albapepper/scoracle-ingest/internal/clockutil"
	"github.com/albapepper/scoracle-ingest/internal/model"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

// PBP transforms every PbpRow for gameID into typed events in stable order
// (event_idx counts only the rows that parse, in the order the upstream
// payload delivers them, already sorted by EVENTNUM, so a skipped row
// leaves no gap). Rows that fail to parse are skipped individually;
// sibling rows are unaffected.
func PBP(gameID string, rows []extract.PbpRow) []model.PbpEvent {
	events := make([]model.PbpEvent, 0, len(rows))
	idx := 0
	for _, row := range rows {
		event, ok := pbpEvent(gameID, idx, row)
		if !ok {
			continue
		}
		events = append(events, event)
		idx++
	}
	return events
}

func pbpEvent(gameID string, eventIdx int, row extract.PbpRow) (model.PbpEvent, bool) {
	period, ok := toInt(row["PERIOD"])
	if !ok {
		return model.PbpEvent{}, false
	}
	clock := stringField(row, "PCTIMESTRING")
	clockSeconds, ok := clockutil.ParseToSeconds(clock)
	if !ok {
		return model.PbpEvent{}, false
	}
	secondsElapsed := clockutil.SecondsElapsed(clockSeconds, period)

	event := model.PbpEvent{
		GameID:         gameID,
		EventIdx:       eventIdx,
		Period:         period,
		Clock:          clock,
		ClockSeconds:   clockSeconds,
		SecondsElapsed: secondsElapsed,
		Description:    joinDescriptions(row),
	}
	if teamID, ok := toInt(row["PLAYER1_TEAM_ID"]); ok {
		event.TeamID = &teamID
	}
	if player1, ok := toInt(row["PLAYER1_ID"]); ok {
		event.Player1ID = &player1
	}
	if player2, ok := toInt(row["PLAYER2_ID"]); ok {
		event.Player2ID = &player2
	}
	if actionType, ok := toInt(row["EVENTMSGTYPE"]); ok {
		event.ActionType = &actionType
	}
	if actionSubtype, ok := toInt(row["EVENTMSGACTIONTYPE"]); ok {
		event.ActionSubtype = &actionSubtype
	}
	return event, true
}

func joinDescriptions(row extract.PbpRow) string {
	for _, field := range []string{"HOMEDESCRIPTION", "VISITORDESCRIPTION", "NEUTRALDESCRIPTION"} {
		if s := stringField(row, field); s != "" {
			return s
		}
	}
	return ""
}
