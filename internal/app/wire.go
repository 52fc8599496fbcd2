package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/floodinsure-backend/internal/adapter/notify"
	"github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	claimrepo "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/claim"
	notificationrepo "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/notification"
	policyrepo "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/policy"
	riskrepo "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/risk"
	userrepo "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/user"
	jwtauth "github.com/heartmarshall/floodinsure-backend/internal/auth"
	"github.com/heartmarshall/floodinsure-backend/internal/config"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
	"github.com/heartmarshall/floodinsure-backend/internal/service/auth"
	"github.com/heartmarshall/floodinsure-backend/internal/service/claim"
	"github.com/heartmarshall/floodinsure-backend/internal/service/notification"
	"github.com/heartmarshall/floodinsure-backend/internal/service/policy"
	"github.com/heartmarshall/floodinsure-backend/internal/service/risk"
	"github.com/heartmarshall/floodinsure-backend/internal/service/user"
)

// Services holds the wired domain services shared by the server and the
// maintenance commands.
type Services struct {
	Auth         *auth.Service
	Users        *user.Service
	Policies     *policy.Service
	Claims       *claim.Service
	Risk         *risk.Service
	Notification *notification.Service
	Outbox       *notificationrepo.Repo
}

// NewServices builds repositories and services over pool. m may be nil.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, m *metrics.Metrics) *Services {
	users := userrepo.New(pool)
	policies := policyrepo.New(pool)
	assessments := riskrepo.New(pool)
	claims := claimrepo.New(pool)
	outbox := notificationrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	notifier := notification.NewService(logger, outbox, newTransport(cfg.Notification, logger), m, cfg.Notification)
	tokens := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL, cfg.Auth.ResetTokenTTL)

	return &Services{
		Auth:         auth.NewService(logger, users, tokens, notifier, cfg.Auth),
		Users:        user.NewService(logger, users, tx),
		Policies:     policy.NewService(logger, policies, assessments, notifier, tx, m),
		Claims:       claim.NewService(logger, claims, policies, notifier, tx, m),
		Risk:         risk.NewService(logger, assessments, policies, claims, tx, m),
		Notification: notifier,
		Outbox:       outbox,
	}
}

type sender interface {
	Send(ctx context.Context, msg domain.Message) error
}

func newTransport(cfg config.NotificationConfig, logger *slog.Logger) sender {
	if cfg.Transport == config.TransportSMTP {
		return notify.NewSMTP(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
		}, logger)
	}
	return notify.NewLog(logger)
}
