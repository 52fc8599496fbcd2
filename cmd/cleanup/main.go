// Command cleanup deletes sent notifications older than the retention
// period. Pending and failed rows stay for the relay and for inspection.
// Run it from cron.
//
//	cleanup [-retention-days=N]
//
// Exits 1 on any error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	"github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/floodinsure-backend/internal/app"
	"github.com/heartmarshall/floodinsure-backend/internal/config"
)

func main() {
	retention := flag.Int("retention-days", 0, "override notification.retention_days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if *retention > 0 {
		cfg.Notification.RetentionDays = *retention
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("notification purge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Notification.RetentionDays <= 0 {
		return errors.New("retention must be at least one day")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	before := time.Now().UTC().AddDate(0, 0, -cfg.Notification.RetentionDays)
	deleted, err := notification.New(pool).PurgeSent(ctx, before)
	if err != nil {
		return fmt.Errorf("purge sent before %s: %w", before.Format(time.RFC3339), err)
	}

	logger.Info("notification purge completed",
		slog.Int64("deleted", deleted),
		slog.Time("sent_before", before),
	)
	return nil
}
