package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// numberAttempts bounds retries after a claim number collision.
const numberAttempts = 3

// Create files a claim against an active policy. The claim and its
// CLAIM_SUBMITTED notification are written in one transaction; delivery is
// attempted after commit and retried by the relay.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Claim, error) {
	p, err := authorize(ctx, domain.ActionClaimCreate)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	var (
		created *domain.Claim
		notice  *domain.Notification
	)
	for attempt := 1; ; attempt++ {
		created, notice, err = s.create(ctx, p.UserID, input)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == numberAttempts {
			return nil, fmt.Errorf("claim.Create: %w", err)
		}
		s.log.WarnContext(ctx, "claim number collision, retrying", slog.Int("attempt", attempt))
	}

	if notice != nil {
		s.notifier.Dispatch(ctx, notice)
	}
	s.metrics.IncClaim(created.Status.String())

	s.log.InfoContext(ctx, "claim submitted",
		slog.String("claim_id", created.ID.String()),
		slog.String("claim_number", created.ClaimNumber),
		slog.String("policy_id", created.PolicyID.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return created, nil
}

func (s *Service) create(ctx context.Context, actor uuid.UUID, input CreateInput) (*domain.Claim, *domain.Notification, error) {
	var (
		created *domain.Claim
		notice  *domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		policy, err := s.policies.GetByID(txCtx, input.PolicyID)
		if err != nil {
			return fmt.Errorf("get policy: %w", err)
		}
		if !policy.IsActive() {
			return fmt.Errorf("policy %s is %s: %w", policy.PolicyNumber, policy.Status, domain.ErrPrecondition)
		}

		now := s.now()
		created, err = s.claims.Create(txCtx, &domain.Claim{
			ID:                  uuid.New(),
			PolicyID:            policy.ID,
			ClaimNumber:         domain.NewClaimNumber(now),
			ClaimAmount:         input.ClaimAmount,
			IncidentDescription: input.IncidentDescription,
			IncidentDate:        input.IncidentDate,
			ClaimDate:           now,
			Status:              domain.ClaimStatusSubmitted,
			Photos:              input.Photos,
			Documents:           input.Documents,
			SubmittedBy:         actor,
		})
		if err != nil {
			return fmt.Errorf("create claim: %w", err)
		}

		amount := created.ClaimAmount
		notice, err = s.enqueue(txCtx, domain.EventClaimSubmitted, policy.Policyholder.Email, domain.NotificationPayload{
			ClaimNumber: created.ClaimNumber,
			ClaimAmount: &amount,
			ClaimStatus: created.Status.String(),
		})
		if err != nil {
			return fmt.Errorf("enqueue notification: %w", err)
		}
		return nil
	})
	return created, notice, err
}
