package loader

import (
	"context"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

const gamesUpsertSQL = `
INSERT INTO ` + config.GamesTable + ` (
	game_id, season, game_date, home_team_id, away_team_id, status,
	arena_name, attendance, source, source_url, ingested_at_utc
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
ON CONFLICT (game_id) DO UPDATE SET
	season = CASE WHEN excluded.season IS DISTINCT FROM ` + config.GamesTable + `.season
		THEN excluded.season ELSE ` + config.GamesTable + `.season END,
	game_date = CASE WHEN excluded.game_date IS DISTINCT FROM ` + config.GamesTable + `.game_date
		THEN excluded.game_date ELSE ` + config.GamesTable + `.game_date END,
	home_team_id = CASE WHEN excluded.home_team_id IS DISTINCT FROM ` + config.GamesTable + `.home_team_id
		THEN excluded.home_team_id ELSE ` + config.GamesTable + `.home_team_id END,
	away_team_id = CASE WHEN excluded.away_team_id IS DISTINCT FROM ` + config.GamesTable + `.away_team_id
		THEN excluded.away_team_id ELSE ` + config.GamesTable + `.away_team_id END,
	status = CASE WHEN excluded.status IS DISTINCT FROM ` + config.GamesTable + `.status
		THEN excluded.status ELSE ` + config.GamesTable + `.status END,
	arena_name = CASE WHEN excluded.arena_name IS DISTINCT FROM ` + config.GamesTable + `.arena_name
		THEN excluded.arena_name ELSE ` + config.GamesTable + `.arena_name END,
	attendance = CASE WHEN excluded.attendance IS DISTINCT FROM ` + config.GamesTable + `.attendance
		THEN excluded.attendance ELSE ` + config.GamesTable + `.attendance END,
	source = excluded.source,
	source_url = excluded.source_url,
	ingested_at_utc = excluded.ingested_at_utc
WHERE (
	excluded.season IS DISTINCT FROM ` + config.GamesTable + `.season OR
	excluded.game_date IS DISTINCT FROM ` + config.GamesTable + `.game_date OR
	excluded.home_team_id IS DISTINCT FROM ` + config.GamesTable + `.home_team_id OR
	excluded.away_team_id IS DISTINCT FROM ` + config.GamesTable + `.away_team_id OR
	excluded.status IS DISTINCT FROM ` + config.GamesTable + `.status OR
	excluded.arena_name IS DISTINCT FROM ` + config.GamesTable + `.arena_name OR
	excluded.attendance IS DISTINCT FROM ` + config.GamesTable + `.attendance
)
RETURNING (xmax = 0) AS inserted`

// UpsertGame idempotently writes a single Game, returning 1 if the row
// changed an existing game, 0 if it was a fresh insert or a no-op.
func UpsertGame(ctx context.Context, q Querier, g model.Game) (int, error) {
	args := [][]interface{}{{
		g.GameID, g.Season, g.GameDate, g.HomeTeamID, g.AwayTeamID, g.Status,
		nilEmpty(g.ArenaName), g.Attendance, g.Source, g.SourceURL, g.IngestedAtUTC,
	}}
	return execUpsertCountUpdated(ctx, q, gamesUpsertSQL, args)
}

func nilEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
