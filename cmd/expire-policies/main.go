// Command expire-policies is the daily policy job. It expires policies whose
// end date has passed, then queues a POLICY_EXPIRING notice for each active
// policy ending exactly N days from today. Run it once a day from cron.
//
//	expire-policies [-notice-days=N]
//
// -notice-days=0 disables notices. Exits 1 on any error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	"github.com/heartmarshall/floodinsure-backend/internal/app"
	"github.com/heartmarshall/floodinsure-backend/internal/config"
)

func main() {
	noticeDays := flag.Int("notice-days", -1, "override notification.expiry_notice_days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log).With(slog.String("job", "expire-policies"))

	if *noticeDays >= 0 {
		cfg.Notification.ExpiryNoticeDays = *noticeDays
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("policy expiry failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	start := time.Now()
	svcs := app.NewServices(cfg, pool, logger, nil)
	result, err := svcs.Policies.ExpirePolicies(ctx, cfg.Notification.ExpiryNoticeDays)
	if err != nil {
		return err
	}

	logger.Info("policy expiry completed",
		slog.Int("expired", result.Expired),
		slog.Int("notices_queued", result.NoticesQueued),
		slog.Int("notices_skipped", result.NoticesSkipped),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}
