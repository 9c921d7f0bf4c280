package transform

import (
	"github.com/albapepper/scoracle-ingest/internal/model"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

// Shots transforms every ShotRow for gameID into typed shot events.
// Invalid rows (missing player/period/coords) are skipped individually.
func Shots(gameID string, rows []extract.ShotRow) []model.ShotEvent {
	out := make([]model.ShotEvent, 0, len(rows))
	for _, row := range rows {
		shot, ok := shotEvent(gameID, row)
		if !ok {
			continue
		}
		out = append(out, shot)
	}
	return out
}

func shotEvent(gameID string, row extract.ShotRow) (model.ShotEvent, bool) {
	playerID, ok := toInt(row["PLAYER_ID"])
	if !ok {
		return model.ShotEvent{}, false
	}
	period, ok := toInt(row["PERIOD"])
	if !ok {
		return model.ShotEvent{}, false
	}
	locX, ok := toInt(row["LOC_X"])
	if !ok {
		return model.ShotEvent{}, false
	}
	locY, ok := toInt(row["LOC_Y"])
	if !ok {
		return model.ShotEvent{}, false
	}
	made, _ := toInt(row["SHOT_MADE_FLAG"])
	if made != 0 {
		made = 1
	}

	shot := model.ShotEvent{
		GameID:       gameID,
		PlayerID:     playerID,
		Period:       period,
		LocX:         locX,
		LocY:         locY,
		ShotMadeFlag: made,
	}
	if teamID, ok := toInt(row["TEAM_ID"]); ok {
		shot.TeamID = &teamID
	}
	if eventNum, ok := toInt(row["EVENT_NUM"]); ok {
		shot.EventNum = &eventNum
	}
	return shot, true
}
