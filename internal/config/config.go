// Package config provides centralized configuration loaded from environment
// variables. Shared by every cmd/ingest subcommand.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// --------------------------------------------------------------------------
// Table names — single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	GamesTable           = "games"
	PbpEventsTable       = "pbp_events"
	ShotEventsTable      = "shot_events"
	LineupStintsTable    = "lineup_stints"
	StartingLineupsTable = "starting_lineups"
	RefAssignmentsTable  = "ref_assignments"
	RefAlternatesTable   = "ref_alternates"
	OutcomesTable        = "outcomes"
	CrosswalkTable       = "game_id_crosswalk"
	InjuryStatusTable    = "injury_status"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Raw harvest
	RawRoot         string
	QuarantineFile  string
	RateLimit       int
	HTTPTimeout     time.Duration
	HTTPProxy       string
	MaxRetries      int
	SeasonTypeFilter string

	// Silver load
	FetchConcurrency int

	Environment string
	Debug       bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		RawRoot:          envOr("RAW_ROOT", "raw"),
		QuarantineFile:   envOr("QUARANTINE_FILE", "ops/quarantine_game_ids.txt"),
		RateLimit:        envInt("NBA_API_RATE_LIMIT", 5),
		HTTPTimeout:      time.Duration(envInt("NBA_API_TIMEOUT", 30)) * time.Second,
		HTTPProxy:        envOr("NBA_API_PROXY", ""),
		MaxRetries:       envInt("NBA_API_MAX_RETRIES", 5),
		SeasonTypeFilter: envOr("NBA_SEASON_TYPE_FILTER", "2"),

		FetchConcurrency: envInt("FETCH_CONCURRENCY", 3),

		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
