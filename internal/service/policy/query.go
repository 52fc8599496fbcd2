package policy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Get returns a policy with its assessment history, latest first.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Details, error) {
	if _, err := authorize(ctx, domain.ActionPolicyRead); err != nil {
		return nil, err
	}

	policy, err := s.policies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("policy.Get: %w", err)
	}

	history, err := s.assessments.ListByPolicy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("policy.Get assessments: %w", err)
	}

	return &Details{Policy: policy, Assessments: history}, nil
}

// ListActive returns active policies, newest first.
func (s *Service) ListActive(ctx context.Context, input ListInput) ([]domain.Policy, error) {
	if _, err := authorize(ctx, domain.ActionPolicyList); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	active := domain.PolicyStatusActive
	policies, err := s.policies.List(ctx, domain.PolicyFilter{Status: &active, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("policy.ListActive: %w", err)
	}
	return policies, nil
}
