package fkcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	ids := []string{"0022300001", "0022300002", "0022300001", "0022300003"}
	gameIDOf := func(i int) string { return ids[i] }
	existing := map[string]bool{"0022300001": true, "0022300002": true}

	valid, rejected, err := (func() ([]int, []Rejection, error) {
		return ValidateGameIDsWithExisting(gameIDOf, len(ids), existing)
	})()
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, valid)
	require.Len(t, rejected, 1)
	require.Equal(t, "0022300003", rejected[0].GameID)
}

func TestDistinctGameIDs(t *testing.T) {
	ids := []string{"a", "b", "a", "c", "b"}
	distinct := distinctGameIDs(func(i int) string { return ids[i] }, len(ids))
	require.Equal(t, []string{"a", "b", "c"}, distinct)
}

func TestValidateGameIDsWithExistingEmpty(t *testing.T) {
	valid, rejected, err := ValidateGameIDsWithExisting(func(i int) string { return "" }, 0, nil)
	require.NoError(t, err)
	require.Nil(t, valid)
	require.Nil(t, rejected)
}
