package transform

import (
	"sort"

	"github.com/albapepper/scoracle-ingest/internal/model"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

// StartingLineups groups boxscore traditional PlayerStats rows by team and
// derives the 5 starters (non-empty START_POSITION) per team. Teams with
// fewer or more than 5 detected starters are skipped — a malformed
// boxscore should not corrupt the starters table.
func StartingLineups(gameID string, rows []extract.PlayerStatsRow) []model.StartingLineup {
	byTeam := map[int][]int{}
	for _, row := range rows {
		if stringField(row, "START_POSITION") == "" {
			continue
		}
		teamID, ok := toInt(row["TEAM_ID"])
		if !ok {
			continue
		}
		playerID, ok := toInt(row["PLAYER_ID"])
		if !ok {
			continue
		}
		byTeam[teamID] = append(byTeam[teamID], playerID)
	}

	out := make([]model.StartingLineup, 0, len(byTeam))
	for teamID, playerIDs := range byTeam {
		if len(playerIDs) != 5 {
			continue
		}
		sort.Ints(playerIDs)
		var ids [5]int
		copy(ids[:], playerIDs)
		out = append(out, model.StartingLineup{
			GameID:    gameID,
			TeamID:    teamID,
			PlayerIDs: ids,
		})
	}
	return out
}
