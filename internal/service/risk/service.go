// Package risk implements risk assessment reads, assessor upserts and the
// per-zone analytics.
package risk

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
)

// assessmentRepo defines the risk assessment repository interface needed by
// risk service.
type assessmentRepo interface {
	Latest(ctx context.Context, policyID uuid.UUID) (*domain.RiskAssessment, error)
	Analytics(ctx context.Context) ([]domain.RiskAnalytics, error)
	Create(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error)
	Update(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error)
}

// policyRepo defines the policy operations needed by risk service.
type policyRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	SetRiskLevel(ctx context.Context, id uuid.UUID, level domain.RiskLevel) error
}

// claimCounter counts the claims filed against a policy.
type claimCounter interface {
	CountByPolicy(ctx context.Context, policyID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by risk service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements risk assessment operations.
type Service struct {
	log         *slog.Logger
	assessments assessmentRepo
	policies    policyRepo
	claims      claimCounter
	tx          txManager
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewService creates a new risk service instance. m may be nil.
func NewService(
	logger *slog.Logger,
	assessments assessmentRepo,
	policies policyRepo,
	claims claimCounter,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:         logger.With("service", "risk"),
		assessments: assessments,
		policies:    policies,
		claims:      claims,
		tx:          tx,
		metrics:     m,
		now:         time.Now,
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
