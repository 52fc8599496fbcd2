package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// Log is a transport that writes messages to the logger instead of sending
// them. It is the default for development.
type Log struct {
	log *slog.Logger
}

// NewLog creates a logging transport.
func NewLog(logger *slog.Logger) *Log {
	return &Log{log: logger.With("adapter", "log_transport")}
}

// Send logs msg and always succeeds.
func (l *Log) Send(ctx context.Context, msg domain.Message) error {
	l.log.InfoContext(ctx, "notification",
		slog.String("recipient", msg.Recipient),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
