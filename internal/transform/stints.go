package transform

import (
	"sort"

	"github.com/albapepper/scoracle-ingest/internal/model"
)

const substitutionEventType = 8

// LineupStints derives 5-player on-court intervals per team per period by
// walking the ordered PBP events for a game and tracking substitutions
// (EVENTMSGTYPE == 8: PLAYER1 leaves, PLAYER2 enters, PLAYER1_TEAM_ID is
// the team substituting). Each team starts every period with its starting
// five (or the five most recently on court from the prior period), and a
// new stint begins whenever its five-player set changes.
func LineupStints(gameID string, events []model.PbpEvent, starters []model.StartingLineup) []model.LineupStint {
	onCourt := map[int][5]int{}
	for _, s := range starters {
		onCourt[s.TeamID] = s.PlayerIDs
	}

	stintStart := map[int]float64{}   // teamID -> seconds_elapsed at stint open
	stintPeriod := map[int]int{}      // teamID -> period the open stint began in
	var out []model.LineupStint

	closeStint := func(teamID int, endElapsed float64) {
		lineup, ok := onCourt[teamID]
		if !ok {
			return
		}
		start, started := stintStart[teamID]
		if !started {
			start = 0
		}
		played := endElapsed - start
		if played < 0 {
			played = 0
		}
		out = append(out, model.LineupStint{
			GameID:          gameID,
			TeamID:          teamID,
			Period:          stintPeriod[teamID],
			LineupPlayerIDs: lineup,
			SecondsPlayed:   played,
		})
	}

	currentPeriod := 0
	for _, ev := range events {
		if ev.Period != currentPeriod {
			// Period boundary: close every open stint and reopen at 0.
			for teamID := range onCourt {
				if currentPeriod != 0 {
					closeStint(teamID, clockPeriodLength(currentPeriod))
				}
				stintStart[teamID] = 0
				stintPeriod[teamID] = ev.Period
			}
			currentPeriod = ev.Period
		}

		if ev.ActionType == nil || *ev.ActionType != substitutionEventType || ev.TeamID == nil {
			continue
		}
		teamID := *ev.TeamID
		lineup, ok := onCourt[teamID]
		if !ok {
			continue
		}
		closeStint(teamID, ev.SecondsElapsed)

		if ev.Player1ID != nil && ev.Player2ID != nil {
			lineup = replacePlayer(lineup, *ev.Player1ID, *ev.Player2ID)
		}
		onCourt[teamID] = lineup
		stintStart[teamID] = ev.SecondsElapsed
		stintPeriod[teamID] = ev.Period
	}

	for teamID := range onCourt {
		closeStint(teamID, clockPeriodLength(currentPeriod))
	}
	return out
}

func clockPeriodLength(period int) float64 {
	if period <= 4 {
		return 720
	}
	return 300
}

func replacePlayer(lineup [5]int, leaving, entering int) [5]int {
	out := lineup
	for i, p := range out {
		if p == leaving {
			out[i] = entering
			break
		}
	}
	sort.Ints(out[:])
	return out
}
