package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// numberAttempts bounds retries after a policy number collision.
const numberAttempts = 3

// Create issues a new active policy together with its initial risk
// assessment. The risk level comes from the flood zone table; the assessment
// carries the placeholder score and a loss estimate of 70% of the premium.
// Both rows are written in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Policy, error) {
	p, err := authorize(ctx, domain.ActionPolicyCreate)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Policy
	for attempt := 1; ; attempt++ {
		created, err = s.create(ctx, p.UserID, input)
		if err == nil {
			break
		}
		// Only a policy number collision is worth another try.
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == numberAttempts {
			return nil, fmt.Errorf("policy.Create: %w", err)
		}
		s.log.WarnContext(ctx, "policy number collision, retrying", slog.Int("attempt", attempt))
	}

	s.metrics.IncPoliciesCreated()
	s.metrics.IncAssessments()

	s.log.InfoContext(ctx, "policy created",
		slog.String("policy_id", created.ID.String()),
		slog.String("policy_number", created.PolicyNumber),
		slog.String("risk_level", created.RiskLevel.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return created, nil
}

func (s *Service) create(ctx context.Context, actor uuid.UUID, input CreateInput) (*domain.Policy, error) {
	var created *domain.Policy
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()

		policy, err := s.policies.Create(txCtx, &domain.Policy{
			ID:           uuid.New(),
			PolicyNumber: domain.NewPolicyNumber(now),
			Policyholder: input.Policyholder,
			Premium:      input.Premium,
			Coverage:     input.Coverage,
			StartDate:    input.StartDate,
			EndDate:      input.EndDate,
			Status:       domain.PolicyStatusActive,
			RiskLevel:    domain.ClassifyFloodZone(input.FloodZone),
			FloodZone:    input.FloodZone,
			CreatedBy:    actor,
		})
		if err != nil {
			return fmt.Errorf("create policy: %w", err)
		}

		assessment, err := initialAssessment(policy, now)
		if err != nil {
			return err
		}
		if _, err := s.assessments.Create(txCtx, assessment); err != nil {
			return fmt.Errorf("create initial assessment: %w", err)
		}

		created = policy
		return nil
	})
	return created, err
}

func initialAssessment(p *domain.Policy, now time.Time) (*domain.RiskAssessment, error) {
	loss, err := domain.InitialPredictedLoss(p.Premium)
	if err != nil {
		return nil, fmt.Errorf("predicted loss: %w", err)
	}
	return &domain.RiskAssessment{
		ID:                  uuid.New(),
		PolicyID:            p.ID,
		RiskScore:           domain.InitialRiskScore,
		FloodZoneCategory:   p.FloodZone,
		PredictedAnnualLoss: loss,
		Factors: domain.AssessmentFactors{
			Version:          domain.PolicyholderSchemaVersion,
			FloodZone:        p.FloodZone,
			PropertyType:     p.Policyholder.PropertyType,
			ConstructionYear: p.Policyholder.ConstructionYear,
		},
		LastUpdated:        now,
		NextAssessmentDate: domain.NextAssessmentDate(now),
	}, nil
}
