package transform

import (
	"strings"

	"github.com/albapepper/scoracle-ingest/internal/model"
	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

// Officials transforms Officials result-set rows into RefAssignments. Only
// one CREW_CHIEF is honored per game — subsequent rows claiming the role
// are demoted to REFEREE, preserving the "at most one crew chief"
// invariant without dropping the official entirely.
func Officials(gameID string, rows []extract.OfficialRow) []model.RefAssignment {
	out := make([]model.RefAssignment, 0, len(rows))
	haveCrewChief := false
	for _, row := range rows {
		firstName := stringField(row, "FIRST_NAME")
		lastName := stringField(row, "LAST_NAME")
		name := strings.TrimSpace(firstName + " " + lastName)
		if name == "" {
			continue
		}
		role := model.RoleReferee
		if haveCrewChief {
			role = model.RoleReferee
		} else if jerseyNum, ok := toInt(row["JERSEY_NUM"]); ok && jerseyNum == 1 {
			role = model.RoleCrewChief
			haveCrewChief = true
		}
		out = append(out, model.RefAssignment{
			GameID:          gameID,
			RefereeName:     name,
			RefereeNameSlug: slug(name),
			Role:            role,
		})
	}
	return out
}

func slug(name string) string {
	lower := strings.ToLower(name)
	fields := strings.Fields(lower)
	return strings.Join(fields, "-")
}
