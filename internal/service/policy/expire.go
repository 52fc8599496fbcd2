package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// ExpirePolicies is the daily maintenance job. It marks every active policy
// whose end date has passed as expired, then queues a POLICY_EXPIRING notice
// for each active policy that ends exactly noticeDays from today. Running
// once a day sends one notice per policy.
//
// The job runs without a caller principal. Notice failures are logged and
// counted, they do not fail the run.
func (s *Service) ExpirePolicies(ctx context.Context, noticeDays int) (*ExpiryResult, error) {
	today := truncateDay(s.now())

	expired, err := s.policies.MarkExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("policy.ExpirePolicies mark expired: %w", err)
	}
	s.metrics.AddPoliciesExpired(len(expired))

	result := &ExpiryResult{Expired: len(expired)}
	for _, p := range expired {
		s.log.InfoContext(ctx, "policy expired",
			slog.String("policy_id", p.ID.String()),
			slog.String("policy_number", p.PolicyNumber),
		)
	}

	if noticeDays <= 0 {
		return result, nil
	}

	from := today.AddDate(0, 0, noticeDays)
	to := from.AddDate(0, 0, 1)
	active := domain.PolicyStatusActive
	filter := domain.PolicyFilter{
		Status:    &active,
		EndAfter:  &from,
		EndBefore: &to,
		Limit:     maxListLimit,
	}
	for {
		ending, err := s.policies.List(ctx, filter)
		if err != nil {
			return result, fmt.Errorf("policy.ExpirePolicies list ending: %w", err)
		}
		for _, p := range ending {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			s.queueExpiryNotice(ctx, p, result)
		}
		if len(ending) < maxListLimit {
			break
		}
		filter.After = domain.CursorOf(ending[len(ending)-1])
	}

	s.log.InfoContext(ctx, "policy expiry run finished",
		slog.Int("expired", result.Expired),
		slog.Int("notices_queued", result.NoticesQueued),
		slog.Int("notices_skipped", result.NoticesSkipped),
	)
	return result, nil
}

func (s *Service) queueExpiryNotice(ctx context.Context, p domain.Policy, result *ExpiryResult) {
	end := p.EndDate
	n, err := s.notifier.Enqueue(ctx, domain.EventPolicyExpiring, p.Policyholder.Email, domain.NotificationPayload{
		PolicyNumber: p.PolicyNumber,
		EndDate:      &end,
	})
	if err != nil {
		result.NoticesSkipped++
		s.log.ErrorContext(ctx, "queue expiry notice failed",
			slog.String("policy_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.notifier.Dispatch(ctx, n)
	result.NoticesQueued++
}
