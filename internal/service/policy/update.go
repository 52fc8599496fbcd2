package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Update merges the given fields into the stored policy. The risk level and
// policy number cannot be changed here.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Policy, error) {
	p, err := authorize(ctx, domain.ActionPolicyUpdate)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Policy
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.policies.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		patch := input.patch()
		if patch.IsEmpty() {
			updated = current
			return nil
		}

		merged := patch.Apply(*current)
		if merged.EndDate.Before(merged.StartDate) {
			return domain.NewValidationError("endDate", "must not be before startDate")
		}

		updated, err = s.policies.Update(txCtx, &merged)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("policy.Update: %w", err)
	}

	s.log.InfoContext(ctx, "policy updated",
		slog.String("policy_id", id.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return updated, nil
}
