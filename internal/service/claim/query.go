package claim

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Get returns a claim by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if _, err := authorize(ctx, domain.ActionClaimRead); err != nil {
		return nil, err
	}

	c, err := s.claims.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("claim.Get: %w", err)
	}
	return c, nil
}

// List returns claims matching the filters, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Claim, error) {
	if _, err := authorize(ctx, domain.ActionClaimList); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.claims.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("claim.List: %w", err)
	}
	return claims, nil
}
