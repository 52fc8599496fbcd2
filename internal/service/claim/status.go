package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// UpdateStatus moves a claim to a new status. The change must follow the
// claim lifecycle; terminal claims cannot change. A CLAIM_STATUS_UPDATED
// notification is queued in the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, input StatusInput) (*domain.Claim, error) {
	p, err := authorize(ctx, domain.ActionClaimUpdateStatus)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Claim
		from    domain.ClaimStatus
		notice  *domain.Notification
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.claims.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		from = current.Status
		if !from.CanTransitionTo(input.Status) {
			return fmt.Errorf("%s -> %s: %w", from, input.Status, domain.ErrInvalidTransition)
		}

		updated, err = s.claims.UpdateStatus(txCtx, id, input.Status, input.AdjustorNotes, input.ApprovedAmount)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		policy, err := s.policies.GetByID(txCtx, updated.PolicyID)
		if err != nil {
			return fmt.Errorf("get policy: %w", err)
		}

		notice, err = s.enqueue(txCtx, domain.EventClaimStatusUpdated, policy.Policyholder.Email, domain.NotificationPayload{
			ClaimNumber:    updated.ClaimNumber,
			ClaimStatus:    updated.Status.String(),
			AdjustorNotes:  updated.AdjustorNotes,
			ApprovedAmount: updated.ApprovedAmount,
		})
		if err != nil {
			return fmt.Errorf("enqueue notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("claim.UpdateStatus: %w", err)
	}

	if notice != nil {
		s.notifier.Dispatch(ctx, notice)
	}
	s.metrics.IncClaim(updated.Status.String())

	s.log.InfoContext(ctx, "claim status updated",
		slog.String("claim_id", id.String()),
		slog.String("from", from.String()),
		slog.String("to", updated.Status.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return updated, nil
}
