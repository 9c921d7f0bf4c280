package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-ingest/internal/silver/extract"
)

func TestOfficialsAssignsCrewChiefOnce(t *testing.T) {
	rows := []extract.OfficialRow{
		{"FIRST_NAME": "Tony", "LAST_NAME": "Brothers", "JERSEY_NUM": int64(1)},
		{"FIRST_NAME": "Scott", "LAST_NAME": "Foster", "JERSEY_NUM": int64(1)},
		{"FIRST_NAME": "Ed", "LAST_NAME": "Malloy", "JERSEY_NUM": int64(48)},
	}
	refs := Officials("0022300123", rows)
	require.Len(t, refs, 3)
	require.Equal(t, "tony-brothers", refs[0].RefereeNameSlug)
	require.Equal(t, "CREW_CHIEF", string(refs[0].Role))
	require.Equal(t, "REFEREE", string(refs[1].Role))
	require.Equal(t, "REFEREE", string(refs[2].Role))
}

func TestOfficialsSkipsBlankNames(t *testing.T) {
	rows := []extract.OfficialRow{{"FIRST_NAME": "", "LAST_NAME": ""}}
	require.Empty(t, Officials("g", rows))
}
