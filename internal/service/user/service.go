// Package user implements user administration: listing, profile updates,
// role changes and (bulk) deactivation under the last-admin rule.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	LockActiveAdmins(ctx context.Context) ([]uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
	SetStatus(ctx context.Context, ids []uuid.UUID, status domain.UserStatus) (int64, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
	}
}

// ensureAdminRemains locks the active admins and fails with ErrLastAdmin
// when removing the given users from that set would leave it empty. It must
// run inside a transaction.
func (s *Service) ensureAdminRemains(ctx context.Context, removing []uuid.UUID) error {
	admins, err := s.users.LockActiveAdmins(ctx)
	if err != nil {
		return fmt.Errorf("lock admins: %w", err)
	}
	return checkAdminsRemain(admins, removing)
}

func checkAdminsRemain(admins, removing []uuid.UUID) error {
	remaining := 0
	for _, id := range admins {
		if !slices.Contains(removing, id) {
			remaining++
		}
	}
	if remaining == 0 && len(admins) > 0 {
		return domain.ErrLastAdmin
	}
	return nil
}

// removesActiveAdmin reports whether applying patch to u takes u out of the
// set of active admins.
func removesActiveAdmin(u *domain.User, patch domain.UserPatch) bool {
	if !u.Role.IsAdmin() || !u.IsActive() {
		return false
	}
	if patch.Role != nil && !patch.Role.IsAdmin() {
		return true
	}
	return patch.Status != nil && *patch.Status != domain.UserStatusActive
}
