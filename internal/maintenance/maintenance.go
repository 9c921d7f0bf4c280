// Package maintenance runs periodic background tasks as Go tickers for a
// long-running ingest service: a health heartbeat and Bronze-tier raw file
// retention. All scheduled work is driven from Go rather than pg_cron,
// since raw-tier retention is a filesystem concern pg_cron cannot reach.
package maintenance

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/scoracle-ingest/internal/pipeline"
)

// Config controls maintenance task intervals and retention. Zero duration
// disables a task.
type Config struct {
	HealthCheckInterval time.Duration
	RawRetentionInterval time.Duration
	RawRetention         time.Duration // raw date directories older than this are removed
	RawRoot              string
}

// DefaultConfig returns sensible production defaults: hourly heartbeat,
// daily retention sweep, 90-day raw retention.
func DefaultConfig(rawRoot string) Config {
	return Config{
		HealthCheckInterval:  1 * time.Hour,
		RawRetentionInterval: 24 * time.Hour,
		RawRetention:         90 * 24 * time.Hour,
		RawRoot:              rawRoot,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled; the serve command calls it in the foreground.
func Start(ctx context.Context, pool *pgxpool.Pool, cfg Config, logger *slog.Logger) {
	logger.Info("maintenance tickers started",
		"health_check", cfg.HealthCheckInterval,
		"raw_retention_sweep", cfg.RawRetentionInterval,
		"raw_retention", cfg.RawRetention)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.HealthCheckInterval > 0 {
		t := time.NewTicker(cfg.HealthCheckInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "health_check", func() { heartbeat(ctx, pool, logger) })
	}

	if cfg.RawRetentionInterval > 0 && cfg.RawRoot != "" {
		t := time.NewTicker(cfg.RawRetentionInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "raw_retention", func() { sweepRawRetention(cfg.RawRoot, cfg.RawRetention, logger) })
	}

	<-ctx.Done()
	logger.Info("maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, name string, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// heartbeat logs the pipeline's component health on an interval, so a
// long-running silver-load daemon surfaces a database outage in logs
// before the next scheduled run fails outright.
func heartbeat(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	health := pipeline.HealthCheck(ctx, pool)
	for component, ok := range health {
		if !ok {
			logger.Warn("health check failing", "component", component)
		}
	}
}

// sweepRawRetention removes Bronze-tier date directories under root whose
// directory name parses as a date older than retention. A directory name
// that doesn't parse as YYYY-MM-DD is left alone rather than guessed at.
func sweepRawRetention(root string, retention time.Duration, logger *slog.Logger) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("raw retention sweep: read root failed", "root", root, "error", err)
		}
		return
	}

	cutoff := time.Now().UTC().Add(-retention)
	removed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		d, err := time.Parse("2006-01-02", e.Name())
		if err != nil {
			continue
		}
		if d.Before(cutoff) {
			path := filepath.Join(root, e.Name())
			if err := os.RemoveAll(path); err != nil {
				logger.Warn("raw retention sweep: remove failed", "path", path, "error", err)
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		logger.Info("raw retention sweep complete", "removed_dates", removed, "cutoff", cutoff.Format("2006-01-02"))
	}
}
