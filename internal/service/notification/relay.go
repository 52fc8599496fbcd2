package notification

import (
	"context"
	"log/slog"
	"time"
)

// Relay periodically delivers pending outbox rows.
type Relay struct {
	svc      *Service
	interval time.Duration
	log      *slog.Logger
}

// NewRelay creates a relay polling svc every interval.
func NewRelay(svc *Service, interval time.Duration) *Relay {
	return &Relay{
		svc:      svc,
		interval: interval,
		log:      svc.log.With("worker", "relay"),
	}
}

// Run polls until ctx is cancelled. It always returns nil so that it can run
// in an errgroup next to the HTTP server.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.InfoContext(ctx, "notification relay started",
		slog.Duration("interval", r.interval),
		slog.Int("batch_size", r.svc.cfg.RelayBatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("notification relay stopped")
			return nil
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

// drain processes full batches back to back until a short one.
func (r *Relay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := r.svc.ProcessDue(ctx)
		if err != nil {
			if ctx.Err() == nil {
				r.log.ErrorContext(ctx, "notification relay batch failed", slog.String("error", err.Error()))
			}
			return
		}
		if n > 0 {
			r.log.DebugContext(ctx, "notification relay batch", slog.Int("count", n))
		}
		if n < r.svc.cfg.RelayBatchSize {
			return
		}
	}
}
