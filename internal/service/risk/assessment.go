package risk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// GetLatest returns the current assessment of a policy.
func (s *Service) GetLatest(ctx context.Context, policyID uuid.UUID) (*domain.RiskAssessment, error) {
	if _, err := authorize(ctx, domain.ActionRiskRead); err != nil {
		return nil, err
	}

	a, err := s.assessments.Latest(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("risk.GetLatest: %w", err)
	}
	return a, nil
}

// Upsert records an assessor's evaluation. The current assessment of the
// policy is overwritten, or created when the policy has none. The policy's
// risk level follows the new score. Both writes share one transaction.
func (s *Service) Upsert(ctx context.Context, policyID uuid.UUID, input UpsertInput) (*domain.RiskAssessment, error) {
	p, err := authorize(ctx, domain.ActionRiskWrite)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	level := domain.RiskLevelFromScore(input.RiskScore)

	var saved *domain.RiskAssessment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Serializes concurrent upserts of one policy.
		if _, err := s.policies.GetByIDForUpdate(txCtx, policyID); err != nil {
			return err
		}

		claims, err := s.claims.CountByPolicy(txCtx, policyID)
		if err != nil {
			return fmt.Errorf("count claims: %w", err)
		}

		now := s.now()
		next := &domain.RiskAssessment{
			PolicyID:              policyID,
			RiskScore:             input.RiskScore,
			FloodZoneCategory:     input.FloodZoneCategory,
			HistoricalClaimsCount: claims,
			PredictedAnnualLoss:   input.PredictedAnnualLoss,
			Factors:               input.Factors,
			LastUpdated:           now,
			NextAssessmentDate:    domain.NextAssessmentDate(now),
		}

		current, err := s.assessments.Latest(txCtx, policyID)
		switch {
		case err == nil:
			next.ID = current.ID
			saved, err = s.assessments.Update(txCtx, next)
		case errors.Is(err, domain.ErrNotFound):
			next.ID = uuid.New()
			saved, err = s.assessments.Create(txCtx, next)
		default:
			return fmt.Errorf("latest assessment: %w", err)
		}
		if err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}

		return s.policies.SetRiskLevel(txCtx, policyID, level)
	})
	if err != nil {
		return nil, fmt.Errorf("risk.Upsert: %w", err)
	}

	s.metrics.IncAssessments()

	s.log.InfoContext(ctx, "risk assessment saved",
		slog.String("policy_id", policyID.String()),
		slog.Int("risk_score", saved.RiskScore),
		slog.String("risk_level", level.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return saved, nil
}

// Analytics returns the average score and count of all assessments per
// flood zone category.
func (s *Service) Analytics(ctx context.Context) ([]domain.RiskAnalytics, error) {
	if _, err := authorize(ctx, domain.ActionRiskAnalytics); err != nil {
		return nil, err
	}

	result, err := s.assessments.Analytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("risk.Analytics: %w", err)
	}
	return result, nil
}
