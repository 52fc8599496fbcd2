package auth

import (
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *domain.User
}

// ResetRequestResult is returned by RequestPasswordReset. Token is set only
// when the service is configured to expose reset tokens and the email
// belongs to an active user.
type ResetRequestResult struct {
	Token string
}
