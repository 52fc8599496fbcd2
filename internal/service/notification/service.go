// Package notification turns domain events into delivered messages.
//
// Producers call Enqueue inside their own transaction, so the outbox row
// commits or rolls back with the change that caused it. After commit they
// may call Dispatch for an immediate attempt. A Relay retries whatever is
// still pending.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/config"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
)

const (
	// lease is how long an outbox row is reserved for one delivery attempt.
	lease = 5 * time.Minute

	// retryBase is the delay before the first retry; it doubles per attempt.
	retryBase = time.Minute

	// sendTimeout bounds a single transport call.
	sendTimeout = 30 * time.Second
)

// outboxRepo defines the outbox repository interface needed by the service.
type outboxRepo interface {
	Enqueue(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	LeaseDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, next time.Time, lastErr string) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error
}

// transport delivers a rendered message.
type transport interface {
	Send(ctx context.Context, msg domain.Message) error
}

// Service implements notification enqueue and delivery.
type Service struct {
	log       *slog.Logger
	outbox    outboxRepo
	transport transport
	metrics   *metrics.Metrics
	cfg       config.NotificationConfig
	now       func() time.Time
}

// NewService creates a new notification service. m may be nil.
func NewService(
	logger *slog.Logger,
	outbox outboxRepo,
	transport transport,
	m *metrics.Metrics,
	cfg config.NotificationConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "notification"),
		outbox:    outbox,
		transport: transport,
		metrics:   m,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Enqueue writes a pending outbox row for event. It joins the transaction
// carried by ctx, if any. The row is reserved for one lease period so that
// the producer's own Dispatch call gets the first attempt.
// An event without a template yields ErrUnknownEvent and writes nothing.
func (s *Service) Enqueue(
	ctx context.Context,
	event domain.NotificationEvent,
	recipient string,
	payload domain.NotificationPayload,
) (*domain.Notification, error) {
	if !IsKnownEvent(event) {
		return nil, fmt.Errorf("notification.Enqueue: %w: %q", ErrUnknownEvent, event)
	}
	if recipient == "" {
		return nil, domain.NewValidationError("recipient", "required")
	}

	n, err := s.outbox.Enqueue(ctx, &domain.Notification{
		ID:            uuid.New(),
		Event:         event,
		Recipient:     recipient,
		Payload:       payload,
		MaxAttempts:   s.cfg.MaxAttempts,
		NextAttemptAt: s.now().Add(lease),
	})
	if err != nil {
		return nil, fmt.Errorf("notification.Enqueue: %w", err)
	}
	return n, nil
}

// Dispatch makes an immediate delivery attempt for a freshly enqueued row.
// Failures are recorded on the row and logged; the relay retries them.
func (s *Service) Dispatch(ctx context.Context, n *domain.Notification) {
	if n == nil {
		return
	}
	// The request that produced n may already be finishing.
	s.deliver(context.WithoutCancel(ctx), *n)
}

// ProcessDue leases and delivers up to one batch of due rows and returns
// how many were attempted.
func (s *Service) ProcessDue(ctx context.Context) (int, error) {
	due, err := s.outbox.LeaseDue(ctx, s.now(), lease, s.cfg.RelayBatchSize)
	if err != nil {
		return 0, fmt.Errorf("notification.ProcessDue: %w", err)
	}

	for i, n := range due {
		if ctx.Err() != nil {
			// Remaining rows stay leased and come back after the lease.
			return i, ctx.Err()
		}
		s.deliver(ctx, n)
	}
	return len(due), nil
}

// deliver renders and sends n, then records the outcome on its row.
func (s *Service) deliver(ctx context.Context, n domain.Notification) {
	log := s.log.With(
		slog.String("notification_id", n.ID.String()),
		slog.String("event", n.Event.String()),
	)

	msg, err := Render(n)
	if err != nil {
		// A row that cannot be rendered will never succeed.
		log.ErrorContext(ctx, "notification render failed, skipping", slog.String("error", err.Error()))
		s.metrics.IncNotification(n.Event.String(), metrics.ResultSkipped)
		if markErr := s.outbox.MarkFailed(ctx, n.ID, err.Error()); markErr != nil {
			log.ErrorContext(ctx, "mark notification failed", slog.String("error", markErr.Error()))
		}
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	sendErr := s.transport.Send(sendCtx, msg)
	cancel()

	now := s.now()
	if sendErr == nil {
		s.metrics.IncNotification(n.Event.String(), metrics.ResultSent)
		if err := s.outbox.MarkSent(ctx, n.ID, now); err != nil {
			log.ErrorContext(ctx, "mark notification sent", slog.String("error", err.Error()))
			return
		}
		log.InfoContext(ctx, "notification sent", slog.String("recipient", n.Recipient))
		return
	}

	attempts := n.Attempts + 1
	if attempts >= n.MaxAttempts {
		s.metrics.IncNotification(n.Event.String(), metrics.ResultFailed)
		log.ErrorContext(ctx, "notification failed after max attempts",
			slog.Int("attempts", attempts),
			slog.Int("max_attempts", n.MaxAttempts),
			slog.String("error", sendErr.Error()),
		)
		if err := s.outbox.MarkFailed(ctx, n.ID, sendErr.Error()); err != nil {
			log.ErrorContext(ctx, "mark notification failed", slog.String("error", err.Error()))
		}
		return
	}

	next := now.Add(Backoff(n.Attempts))
	s.metrics.IncNotification(n.Event.String(), metrics.ResultRetry)
	log.WarnContext(ctx, "notification failed, will retry",
		slog.Int("attempts", attempts),
		slog.Int("max_attempts", n.MaxAttempts),
		slog.Time("next_attempt_at", next),
		slog.String("error", sendErr.Error()),
	)
	if err := s.outbox.MarkRetry(ctx, n.ID, next, sendErr.Error()); err != nil {
		log.ErrorContext(ctx, "mark notification retry", slog.String("error", err.Error()))
	}
}

// Backoff returns the delay before the retry that follows the given number
// of previous attempts: 1m, 2m, 4m, ...
func Backoff(previousAttempts int) time.Duration {
	if previousAttempts < 0 {
		previousAttempts = 0
	}
	if previousAttempts > 16 {
		previousAttempts = 16
	}
	return retryBase * time.Duration(1<<previousAttempts)
}
