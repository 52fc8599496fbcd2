// Package auth implements registration, login, bearer token verification
// and password reset.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/floodinsure-backend/internal/config"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// tokenManager defines the JWT operations needed by auth service.
type tokenManager interface {
	GenerateSessionToken(userID uuid.UUID, role string) (string, error)
	ValidateSessionToken(token string) (uuid.UUID, string, error)
	GenerateResetToken(userID uuid.UUID, stamp string) (string, error)
	ValidateResetToken(token string) (uuid.UUID, string, error)
}

// notifier defines the notification operations needed by auth service.
type notifier interface {
	Enqueue(ctx context.Context, event domain.NotificationEvent, recipient string, payload domain.NotificationPayload) (*domain.Notification, error)
	Dispatch(ctx context.Context, n *domain.Notification)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tokens   tokenManager
	notifier notifier
	cfg      config.AuthConfig

	// dummyHash is compared against on unknown emails so that login takes
	// the same bcrypt time whether or not the account exists.
	dummyHash func() []byte
	compare   func(hash, password []byte) error
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenManager,
	notifier notifier,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		tokens:    tokens,
		notifier:  notifier,
		cfg:       cfg,
		dummyHash: dummyHashFunc(cfg.BcryptCost),
		compare:   bcrypt.CompareHashAndPassword,
	}
}

func dummyHashFunc(cost int) func() []byte {
	return sync.OnceValue(func() []byte {
		hash, err := bcrypt.GenerateFromPassword([]byte("floodinsure-login-filler"), cost)
		if err != nil {
			panic(fmt.Sprintf("auth: dummy hash: %v", err))
		}
		return hash
	})
}

// passwordStamp fingerprints a stored password hash. Reset tokens carry the
// stamp of the hash they may replace, so a reset invalidates every token
// issued before it.
func passwordStamp(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}

// issueSession generates a session token for the given user.
func (s *Service) issueSession(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateSessionToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &AuthResult{
		Token:     token,
		ExpiresIn: s.cfg.SessionTTL,
		User:      user,
	}, nil
}
