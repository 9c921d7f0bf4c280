package rawio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSONWritesFileAndReturnsSHA1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoreboard.json")

	result, err := WriteJSON(path, map[string]string{"hello": "world"})
	require.NoError(t, err)
	require.NotZero(t, result.Bytes)
	require.Len(t, result.SHA1, 40)
	require.False(t, result.Gz)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(body), "hello")

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(path + ".gz")
	require.True(t, os.IsNotExist(err))
}

func TestWriteJSONWritesGzipSiblingAboveThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.json")

	big := strings.Repeat("x", gzipThresholdBytes+1)
	result, err := WriteJSON(path, map[string]string{"blob": big})
	require.NoError(t, err)
	require.True(t, result.Gz)

	_, err = os.Stat(path + ".gz")
	require.NoError(t, err)
}

func TestUpdateManifestMergesAndRecomputesSummary(t *testing.T) {
	dir := t.TempDir()

	_, err := UpdateManifest(dir, "2024-11-05", GameRecord{
		GameID:    "0022300123",
		Endpoints: map[string]EndpointRecord{"boxscoresummaryv2": {Bytes: 100, OK: true}},
	})
	require.NoError(t, err)

	m, err := UpdateManifest(dir, "2024-11-05", GameRecord{
		GameID:    "0022300123",
		Endpoints: map[string]EndpointRecord{"playbyplayv2": {Bytes: 200, OK: true}},
	})
	require.NoError(t, err)

	require.Len(t, m.Games, 1)
	require.Len(t, m.Games[0].Endpoints, 2)
	require.Equal(t, 1, m.Summary.Games)
	require.Equal(t, 1, m.Summary.OKGames)
	require.Equal(t, 0, m.Summary.FailedGames)
	require.Equal(t, 300, m.Summary.TotalBytes)
}

func TestUpdateManifestCountsFailedGameWithErrors(t *testing.T) {
	dir := t.TempDir()

	m, err := UpdateManifest(dir, "2024-11-05", GameRecord{
		GameID:    "0022300999",
		Endpoints: map[string]EndpointRecord{"boxscoresummaryv2": {Bytes: 10, OK: false}},
		Errors:    []string{"timeout"},
	})
	require.NoError(t, err)
	require.Equal(t, 0, m.Summary.OKGames)
	require.Equal(t, 1, m.Summary.FailedGames)
}

func TestReadManifestMissingFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	m, err := ReadManifest(dir, "2024-11-05")
	require.NoError(t, err)
	require.Equal(t, "2024-11-05", m.Date)
	require.Empty(t, m.Games)
}

func TestAppendQuarantineAppendsLinesWithoutTruncating(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quarantine.txt")

	require.NoError(t, AppendQuarantine(path, "0022300123", "playbyplayv2", errors.New("boom")))
	require.NoError(t, AppendQuarantine(path, "0022300124", "shotchartdetail", errors.New("timeout")))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "0022300123 playbyplayv2 boom")
	require.Contains(t, lines[1], "0022300124 shotchartdetail timeout")
}
