// Package claim implements the claim lifecycle: filing against an active
// policy, adjustor status changes and the related notifications.
package claim

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
	"github.com/heartmarshall/floodinsure-backend/internal/service/notification"
)

// claimRepo defines the claim repository interface needed by claim service.
type claimRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	List(ctx context.Context, f domain.ClaimFilter) ([]domain.Claim, error)
	Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ClaimStatus, notes *string, approved *domain.Money) (*domain.Claim, error)
}

// policyRepo defines the policy operations needed by claim service.
type policyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
}

// notifier defines the notification operations needed by claim service.
type notifier interface {
	Enqueue(ctx context.Context, event domain.NotificationEvent, recipient string, payload domain.NotificationPayload) (*domain.Notification, error)
	Dispatch(ctx context.Context, n *domain.Notification)
}

// txManager defines the transaction manager interface needed by claim service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements claim operations.
type Service struct {
	log      *slog.Logger
	claims   claimRepo
	policies policyRepo
	notifier notifier
	tx       txManager
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewService creates a new claim service instance. m may be nil.
func NewService(
	logger *slog.Logger,
	claims claimRepo,
	policies policyRepo,
	notifier notifier,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:      logger.With("service", "claim"),
		claims:   claims,
		policies: policies,
		notifier: notifier,
		tx:       tx,
		metrics:  m,
		now:      time.Now,
	}
}

func authorize(ctx context.Context, action domain.Action) (domain.Principal, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return domain.Principal{}, err
	}
	if err := domain.Authorize(p, action).Err(); err != nil {
		return domain.Principal{}, err
	}
	return p, nil
}

// enqueue writes a notification inside the caller's transaction. A message
// that cannot be built (no recipient, no template) is logged and skipped so
// the claim write still commits. Storage errors abort the transaction.
func (s *Service) enqueue(
	ctx context.Context,
	event domain.NotificationEvent,
	recipient string,
	payload domain.NotificationPayload,
) (*domain.Notification, error) {
	n, err := s.notifier.Enqueue(ctx, event, recipient, payload)
	if err == nil {
		return n, nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) || errors.Is(err, notification.ErrUnknownEvent) {
		s.log.WarnContext(ctx, "claim notification skipped",
			slog.String("event", event.String()),
			slog.String("claim_number", payload.ClaimNumber),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}
	return nil, err
}
