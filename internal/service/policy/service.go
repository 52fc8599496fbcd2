// Package policy implements the policy lifecycle: issuance with an initial
// risk assessment, partial updates, reads and the expiry job.
package policy

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
)

// policyRepo defines the policy repository interface needed by policy service.
type policyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	List(ctx context.Context, f domain.PolicyFilter) ([]domain.Policy, error)
	Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error)
	Update(ctx context.Context, p *domain.Policy) (*domain.Policy, error)
	MarkExpired(ctx context.Context, asOf time.Time) ([]domain.Policy, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// assessmentRepo defines the risk assessment repository interface needed by
// policy service.
type assessmentRepo interface {
	Create(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error)
	ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.RiskAssessment, error)
}

// notifier defines the notification operations needed by policy service.
type notifier interface {
	Enqueue(ctx context.Context, event domain.NotificationEvent, recipient string, payload domain.NotificationPayload) (*domain.Notification, error)
	Dispatch(ctx context.Context, n *domain.Notification)
}

// txManager defines the transaction manager interface needed by policy service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements policy operations.
type Service struct {
	log         *slog.Logger
	policies    policyRepo
	assessments assessmentRepo
	notifier    notifier
	tx          txManager
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewService creates a new policy service instance. m may be nil.
func NewService(
	logger *slog.Logger,
	policies policyRepo,
	assessments assessmentRepo,
	notifier notifier,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:         logger.With("service", "policy"),
		policies:    policies,
		assessments: assessments,
		notifier:    notifier,
		tx:          tx,
		metrics:     m,
		now:         time.Now,
	}
}

// authorize resolves the caller and checks it against action.
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

// truncateDay returns midnight UTC of t's calendar day.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
