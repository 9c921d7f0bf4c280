// Command ingest is the Scoracle NBA ingest CLI.
//
// Usage:
//
//	scoracle-ingest raw-harvest --date 2024-11-05
//	scoracle-ingest silver-load --date 2024-11-05
//	scoracle-ingest health
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/scoracle-ingest/internal/config"
	"github.com/albapepper/scoracle-ingest/internal/db"
	"github.com/albapepper/scoracle-ingest/internal/harvest"
	"github.com/albapepper/scoracle-ingest/internal/httpfetch"
	"github.com/albapepper/scoracle-ingest/internal/maintenance"
	"github.com/albapepper/scoracle-ingest/internal/pipeline"
	"github.com/albapepper/scoracle-ingest/internal/provider/statsapi"
	"github.com/albapepper/scoracle-ingest/internal/ratelimit"
	"github.com/albapepper/scoracle-ingest/internal/silver/reader"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// refSiteBoxscoreURLTemplate is basketball-reference's documented public
// boxscore URL convention, filled with the bref-style game ID derived
// by teamcrosswalk.BrefGameID.
const refSiteBoxscoreURLTemplate = "https://www.basketball-reference.com/boxscores/%s.html"

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "scoracle-ingest",
		Short: "NBA Bronze-to-Silver ingest CLI",
	}

	root.AddCommand(rawHarvestCmd())
	root.AddCommand(silverLoadCmd())
	root.AddCommand(healthCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// raw-harvest command
// --------------------------------------------------------------------------

func rawHarvestCmd() *cobra.Command {
	var (
		date       string
		rawRoot    string
		rateLimit  int
		maxRetries int
		seasonType string
	)
	cmd := &cobra.Command{
		Use:   "raw-harvest",
		Short: "Harvest one date's raw NBA Stats API payloads into the Bronze tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return fmt.Errorf("--date is required (YYYY-MM-DD)")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if rawRoot != "" {
				cfg.RawRoot = rawRoot
			}
			if rateLimit > 0 {
				cfg.RateLimit = rateLimit
			}
			if maxRetries > 0 {
				cfg.MaxRetries = maxRetries
			}
			if cmd.Flags().Changed("season-type") {
				cfg.SeasonTypeFilter = seasonType
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			limiter := ratelimit.New(cfg.RateLimit)
			fetcher := httpfetch.New(limiter,
				httpfetch.WithTimeout(cfg.HTTPTimeout),
				httpfetch.WithProxy(cfg.HTTPProxy),
				httpfetch.WithMaxRetries(cfg.MaxRetries),
			)
			client := statsapi.NewClient(fetcher)

			start := time.Now()
			summary := harvest.HarvestDate(ctx, client, date, harvest.Options{
				RawRoot:            cfg.RawRoot,
				QuarantineFile:     cfg.QuarantineFile,
				SeasonTypeFilter:   cfg.SeasonTypeFilter,
				RefSiteFetcher:     fetcher,
				RefSiteURLTemplate: refSiteBoxscoreURLTemplate,
			}, logger)

			logger.Info("raw-harvest finished",
				"date", date,
				"duration", time.Since(start).Round(time.Second),
				"games_discovered", summary.GamesDiscovered,
				"games_processed", summary.GamesProcessed,
				"endpoints_succeeded", summary.EndpointsSucceeded,
				"endpoints_failed", summary.EndpointsFailed,
				"quarantined", len(summary.QuarantinedGames),
			)

			printFirstErrors(summary.Errors)
			if len(summary.Errors) > 0 {
				return fmt.Errorf("raw-harvest completed with %d fatal error(s)", len(summary.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to harvest, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&rawRoot, "root", "", "Raw data root directory (overrides RAW_ROOT)")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "Requests per second (overrides NBA_API_RATE_LIMIT)")
	cmd.Flags().IntVar(&maxRetries, "retries", 0, "Max retries per endpoint (overrides NBA_API_MAX_RETRIES)")
	cmd.Flags().StringVar(&seasonType, "season-type", "", "SEASON_TYPE_ID to keep; empty keeps all (overrides NBA_SEASON_TYPE_FILTER)")
	return cmd
}

// --------------------------------------------------------------------------
// silver-load command
// --------------------------------------------------------------------------

func silverLoadCmd() *cobra.Command {
	var (
		date    string
		rawRoot string
	)
	cmd := &cobra.Command{
		Use:   "silver-load",
		Short: "Run the foundation pipeline over one date's harvested games",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return fmt.Errorf("--date is required (YYYY-MM-DD)")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if rawRoot != "" {
				cfg.RawRoot = rawRoot
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			r := reader.New(cfg.RawRoot)
			gameDirs, err := r.GameDirs(date)
			if err != nil {
				return fmt.Errorf("list game directories: %w", err)
			}
			if len(gameDirs) == 0 {
				logger.Info("no harvested games found for date", "date", date, "root", cfg.RawRoot)
				return nil
			}

			gameIDs := make([]string, 0, len(gameDirs))
			for _, dir := range gameDirs {
				gameIDs = append(gameIDs, reader.GameID(dir))
			}

			start := time.Now()
			results := pipeline.ProcessGames(ctx, pool.Pool, r, date, gameIDs, cfg.FetchConcurrency, logger)

			var failed []pipeline.Result
			totalPbp, totalStints := 0, 0
			for _, res := range results {
				totalPbp += res.PbpEvents
				totalStints += res.LineupStints
				if len(res.Errors) > 0 {
					failed = append(failed, res)
				}
			}

			logger.Info("silver-load finished",
				"date", date,
				"duration", time.Since(start).Round(time.Second),
				"games", len(results),
				"failed_games", len(failed),
				"pbp_events", totalPbp,
				"lineup_stints", totalStints,
			)

			var allErrors []string
			for _, f := range failed {
				for _, e := range f.Errors {
					allErrors = append(allErrors, fmt.Sprintf("%s: %s", f.GameID, e))
				}
			}
			printFirstErrors(allErrors)

			if len(failed) > 0 {
				return fmt.Errorf("silver-load completed with %d failed game(s)", len(failed))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to load, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&rawRoot, "raw-root", "", "Raw data root directory (overrides RAW_ROOT)")
	return cmd
}

// --------------------------------------------------------------------------
// health command
// --------------------------------------------------------------------------

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check database connectivity and core pure-function health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			health := pipeline.HealthCheck(ctx, pool.Pool)
			allOK := true
			for component, ok := range health {
				logger.Info("health check", "component", component, "ok", ok)
				if !ok {
					allOK = false
				}
			}
			if !allOK {
				return fmt.Errorf("one or more health checks failed")
			}
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run maintenance tickers (health heartbeat, raw retention sweep) in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			maintenance.Start(ctx, pool.Pool, maintenance.DefaultConfig(cfg.RawRoot), logger)
			return nil
		},
	}
}

// printFirstErrors logs up to 5 errors, noting how many more were
// suppressed so a noisy run doesn't flood the console.
func printFirstErrors(errs []string) {
	limit := 5
	for i, e := range errs {
		if i >= limit {
			logger.Error("additional errors suppressed", "count", len(errs)-limit)
			break
		}
		logger.Error("error", "detail", e)
	}
}
