package transform

import "github.com/albapepper/scoracle-ingest/internal/model"

// Outcome derives the final score and margin from a game's LineScore rows
// (one per team) paired with the already-resolved home/away team IDs.
// Returns (Outcome{}, false) if either team's points cannot be found.
func Outcome(gameID string, homeTeamID, awayTeamID int, lineScoreRows []map[string]interface{}) (model.Outcome, bool) {
	points := map[int]int{}
	for _, row := range lineScoreRows {
		teamID, ok := toInt(row["TEAM_ID"])
		if !ok {
			continue
		}
		pts, ok := toInt(row["PTS"])
		if !ok {
			continue
		}
		points[teamID] = pts
	}

	homePoints, homeOK := points[homeTeamID]
	awayPoints, awayOK := points[awayTeamID]
	if !homeOK || !awayOK {
		return model.Outcome{}, false
	}

	return model.Outcome{
		GameID:      gameID,
		HomePoints:  homePoints,
		AwayPoints:  awayPoints,
		TotalPoints: homePoints + awayPoints,
		HomeWin:     homePoints > awayPoints,
		Margin:      homePoints - awayPoints,
	}, true
}
