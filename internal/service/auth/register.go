package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Register creates a new active user with email + password authentication
// and signs them in. Returns ErrConflict if the email is already taken.
//
// Self-registration always yields a policyholder. Any other role requires
// the caller in ctx to be an admin; anonymous callers get ErrForbidden.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Role != domain.UserRolePolicyholder {
		p, err := domain.PrincipalFromCtx(ctx)
		if err != nil || !p.Role.IsAdmin() {
			return nil, fmt.Errorf("auth.Register: only admins may register %s users: %w", input.Role, domain.ErrForbidden)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by the database.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		Status:       domain.UserStatusActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: email already registered: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return result, nil
}
