package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// RequestPasswordReset issues a reset token for the account behind email and
// hands it to the notification outbox. The result is the same whether or
// not the email is registered.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (*ResetRequestResult, error) {
	email = normalizeEmail(email)
	if errs := validateEmail(nil, email); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset requested for unknown email")
			return &ResetRequestResult{}, nil
		}
		return nil, fmt.Errorf("auth.RequestPasswordReset get user: %w", err)
	}
	if !user.IsActive() {
		s.log.InfoContext(ctx, "password reset requested for inactive user", slog.String("user_id", user.ID.String()))
		return &ResetRequestResult{}, nil
	}

	token, err := s.tokens.GenerateResetToken(user.ID, passwordStamp(user.PasswordHash))
	if err != nil {
		return nil, fmt.Errorf("auth.RequestPasswordReset generate token: %w", err)
	}

	n, err := s.notifier.Enqueue(ctx, domain.EventPasswordReset, user.Email, domain.NotificationPayload{
		ResetToken: token,
		ExpiresIn:  s.cfg.ResetTokenTTL.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.RequestPasswordReset enqueue: %w", err)
	}
	s.notifier.Dispatch(ctx, n)

	s.log.InfoContext(ctx, "password reset requested", slog.String("user_id", user.ID.String()))

	result := &ResetRequestResult{}
	if s.cfg.ExposeResetToken {
		result.Token = token
	}
	return result, nil
}

// ResetPassword replaces the password of the user named by a reset token.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	userID, stamp, err := s.tokens.ValidateResetToken(input.Token)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword: %v: %w", err, domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("auth.ResetPassword: user not found: %w", domain.ErrUnauthorized)
		}
		return fmt.Errorf("auth.ResetPassword get user: %w", err)
	}
	if !user.IsActive() {
		return fmt.Errorf("auth.ResetPassword: user inactive: %w", domain.ErrUnauthorized)
	}
	if stamp != passwordStamp(user.PasswordHash) {
		return fmt.Errorf("auth.ResetPassword: token already used or superseded: %w", domain.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", user.ID.String()))
	return nil
}
