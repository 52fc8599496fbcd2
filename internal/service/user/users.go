package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// List returns users matching the filter (admin only).
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.User, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ActionUserList).Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns one user. Admins may read anyone; other users only themselves.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeSelfOrAdmin(p, id, domain.ActionUserRead).Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return user, nil
}

// Update applies a partial update to a user. Admins may update anyone and
// may change role and status; other users may only edit their own email and
// names. A change that would leave no active admin fails with ErrLastAdmin.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.User, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeSelfOrAdmin(p, id, domain.ActionUserUpdate).Err(); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if (input.Role != nil || input.Status != nil) && !p.Role.IsAdmin() {
		return nil, fmt.Errorf("user.Update: only admins may change role or status: %w", domain.ErrForbidden)
	}

	patch := input.patch()
	user, err := s.apply(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.Update: email already registered: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", id.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return user, nil
}

// Deactivate sets a user inactive (admin only). Users are never deleted.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ActionUserDeactivate).Err(); err != nil {
		return nil, err
	}

	inactive := domain.UserStatusInactive
	user, err := s.apply(ctx, id, domain.UserPatch{Status: &inactive})
	if err != nil {
		return nil, fmt.Errorf("user.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "user deactivated",
		slog.String("user_id", id.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return user, nil
}

// SetRole changes the role of a user (admin only).
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ActionUserSetRole).Err(); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of: admin, agent, policyholder")
	}

	user, err := s.apply(ctx, id, domain.UserPatch{Role: &role})
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("user_id", id.String()),
		slog.String("new_role", role.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return user, nil
}

// BulkSetStatus sets the status of every listed user in one transaction and
// returns how many rows changed (admin only). Either all users change or,
// when deactivation would remove every active admin, none do.
func (s *Service) BulkSetStatus(ctx context.Context, input BulkStatusInput) (int64, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return 0, err
	}
	if err := domain.Authorize(p, domain.ActionUserBulkStatus).Err(); err != nil {
		return 0, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return 0, err
	}

	var changed int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Status != domain.UserStatusActive {
			if err := s.ensureAdminRemains(txCtx, input.IDs); err != nil {
				return err
			}
		}

		n, err := s.users.SetStatus(txCtx, input.IDs, input.Status)
		if err != nil {
			return err
		}
		changed = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("user.BulkSetStatus: %w", err)
	}

	s.log.InfoContext(ctx, "user status bulk updated",
		slog.Int("requested", len(input.IDs)),
		slog.Int64("changed", changed),
		slog.String("status", input.Status.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return changed, nil
}

// apply locks the target user and writes patch, running the last-admin
// check when the patch demotes or deactivates an active admin.
func (s *Service) apply(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var admins []uuid.UUID
		if patch.Role != nil || patch.Status != nil {
			// Admin rows are locked before the target so that concurrent
			// changes take locks in the same order.
			locked, err := s.users.LockActiveAdmins(txCtx)
			if err != nil {
				return fmt.Errorf("lock admins: %w", err)
			}
			admins = locked
		}

		current, err := s.users.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if removesActiveAdmin(current, patch) {
			if err := checkAdminsRemain(admins, []uuid.UUID{id}); err != nil {
				return err
			}
		}

		updated, err = s.users.Update(txCtx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
