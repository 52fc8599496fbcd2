package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token purposes. A token is only accepted by the validator of its purpose.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

// ErrWrongPurpose is returned when a valid token is presented to the
// validator of another purpose.
var ErrWrongPurpose = errors.New("token issued for another purpose")

// JWTManager signs and validates HS256 session and password-reset tokens.
type JWTManager struct {
	secret     []byte
	issuer     string
	sessionTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, sessionTTL, resetTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		issuer:     issuer,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		now:        time.Now,
	}
}

// SessionTTL returns the lifetime of issued session tokens.
func (m *JWTManager) SessionTTL() time.Duration { return m.sessionTTL }

// ResetTTL returns the lifetime of issued password-reset tokens.
func (m *JWTManager) ResetTTL() time.Duration { return m.resetTTL }

type tokenClaims struct {
	jwt.RegisteredClaims
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
	Stamp   string `json:"stamp,omitempty"`
}

// GenerateSessionToken creates a bearer token carrying the user ID as
// subject and the role as a custom claim.
func (m *JWTManager) GenerateSessionToken(userID uuid.UUID, role string) (string, error) {
	return m.sign(tokenClaims{Role: role, Purpose: PurposeSession}, userID, m.sessionTTL)
}

// GenerateResetToken creates a single-purpose password-reset token. stamp
// identifies the credential being replaced and is returned by
// ValidateResetToken, so the caller can reject tokens minted before the
// password last changed.
func (m *JWTManager) GenerateResetToken(userID uuid.UUID, stamp string) (string, error) {
	return m.sign(tokenClaims{Purpose: PurposePasswordReset, Stamp: stamp}, userID, m.resetTTL)
}

// ValidateSessionToken parses a session token and returns its user ID and
// role.
func (m *JWTManager) ValidateSessionToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := m.parse(tokenString, PurposeSession)
	if err != nil {
		return uuid.Nil, "", err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}
	return userID, claims.Role, nil
}

// ValidateResetToken parses a password-reset token and returns its user ID
// and credential stamp.
func (m *JWTManager) ValidateResetToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := m.parse(tokenString, PurposePasswordReset)
	if err != nil {
		return uuid.Nil, "", err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}
	return userID, claims.Stamp, nil
}

func (m *JWTManager) sign(claims tokenClaims, userID uuid.UUID, ttl time.Duration) (string, error) {
	now := m.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *JWTManager) parse(tokenString, purpose string) (*tokenClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Purpose != purpose {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrWrongPurpose, claims.Purpose, purpose)
	}

	return claims, nil
}
