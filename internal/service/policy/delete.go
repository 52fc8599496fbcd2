package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Delete soft-deletes a policy. The row, its assessments and its claims are
// retained; the policy disappears from reads and lists.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := authorize(ctx, domain.ActionPolicyDelete)
	if err != nil {
		return err
	}

	if err := s.policies.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("policy.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "policy deleted",
		slog.String("policy_id", id.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return nil
}
