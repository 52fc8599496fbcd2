package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Notification transports.
const (
	TransportLog  = "log"
	TransportSMTP = "smtp"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("ratelimit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", a.SessionTTL)
	}
	if a.ResetTokenTTL <= 0 {
		return fmt.Errorf("reset_token_ttl must be > 0 (got %v)", a.ResetTokenTTL)
	}
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost)
	}
	return nil
}

func (n *NotificationConfig) validate() error {
	switch n.Transport {
	case TransportLog:
	case TransportSMTP:
		if n.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required when transport is smtp")
		}
		if n.SMTPPort <= 0 {
			return fmt.Errorf("smtp_port must be > 0 (got %d)", n.SMTPPort)
		}
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", n.Transport, TransportLog, TransportSMTP)
	}

	if n.From == "" {
		return fmt.Errorf("from is required")
	}
	if n.RelayInterval <= 0 {
		return fmt.Errorf("relay_interval must be > 0 (got %v)", n.RelayInterval)
	}
	if n.RelayBatchSize <= 0 {
		return fmt.Errorf("relay_batch_size must be > 0 (got %d)", n.RelayBatchSize)
	}
	if n.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", n.MaxAttempts)
	}
	if n.ExpiryNoticeDays < 0 {
		return fmt.Errorf("expiry_notice_days must be >= 0 (got %d)", n.ExpiryNoticeDays)
	}
	if n.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", n.RetentionDays)
	}
	return nil
}
