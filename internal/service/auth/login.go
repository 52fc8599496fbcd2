package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Login authenticates a user with email + password. Unknown email, wrong
// password and inactive account all yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.compare(s.dummyHash(), []byte(input.Password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.compare([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return result, nil
}

// VerifyToken validates a session token and returns the active user it
// belongs to. The role is taken from the stored user, not the token, so role
// changes apply to tokens issued before them.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	userID, _, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyToken: %v: %w", err, domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.VerifyToken: user not found: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.VerifyToken get user: %w", err)
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("auth.VerifyToken: user inactive: %w", domain.ErrUnauthorized)
	}

	return user, nil
}

// Me returns the authenticated caller.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	p, err := domain.PrincipalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
