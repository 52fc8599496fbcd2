// Package app wires configuration, storage, services and transports into
// the running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	"github.com/heartmarshall/floodinsure-backend/internal/config"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
	"github.com/heartmarshall/floodinsure-backend/internal/service/notification"
	"github.com/heartmarshall/floodinsure-backend/internal/transport/middleware"
	"github.com/heartmarshall/floodinsure-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, optionally applies migrations, then serves HTTP and runs the
// notification relay until ctx is cancelled. Shutdown drains in-flight
// requests within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		postgres.NewPoolCollector(pool),
	)
	m := metrics.New(reg)

	svcs := NewServices(cfg, pool, logger, m)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, m)
	defer limiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(cfg, svcs, pool, reg, m, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	relay := notification.NewRelay(svcs.Notification, cfg.Notification.RelayInterval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return relay.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped")
	return nil
}

func newHandler(
	cfg *config.Config,
	svcs *Services,
	pool interface{ Ping(ctx context.Context) error },
	reg *prometheus.Registry,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	return rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(svcs.Auth, logger),
		Users:    rest.NewUserHandler(svcs.Users, logger),
		Policies: rest.NewPolicyHandler(svcs.Policies, logger),
		Claims:   rest.NewClaimHandler(svcs.Claims, logger),
		Risk:     rest.NewRiskHandler(svcs.Risk, logger),
		Health:   rest.NewHealthHandler(Version, rest.PingCheck("database", pool)),
	}, rest.RouterDeps{
		Logger:         logger,
		Tokens:         svcs.Auth,
		Limiter:        limiter,
		Metrics:        m,
		MetricsHandler: metricsHandler,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
		MetricsPath:    cfg.Metrics.Path,
	})
}
