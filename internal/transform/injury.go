package transform

import (
	"github.com/albapepper/scoracle-ingest/internal/model"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

// InjuryStatuses transforms InactivePlayers rows into InjuryStatus
// records. The stats API only tells us a player was inactive, never why
// or at what severity, so every row maps to status OUT with no reason —
// this is a best-effort signal, not a full injury report.
func InjuryStatuses(gameID string, rows []extract.InactivePlayerRow) []model.InjuryStatus {
	out := make([]model.InjuryStatus, 0, len(rows))
	for _, row := range rows {
		playerID, ok := toInt(row["PLAYER_ID"])
		if !ok {
			continue
		}
		out = append(out, model.InjuryStatus{
			GameID:   gameID,
			PlayerID: playerID,
			Status:   "OUT",
		})
	}
	return out
}
