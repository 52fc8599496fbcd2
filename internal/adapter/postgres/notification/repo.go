// Package notification implements the notification outbox using PostgreSQL.
//
// Rows are written in the same transaction as the change that produced them
// and are delivered later by a relay. A relay leases due rows by pushing
// their next_attempt_at forward; rows leased by a crashed relay become due
// again once the lease runs out.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const table = "notifications"

var columns = []string{
	"id", "event", "recipient", "payload", "status", "attempts", "max_attempts",
	"next_attempt_at", "last_error", "created_at", "sent_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// scrubbedPayload drops one-time secrets from a row that will not be
// delivered again.
var scrubbedPayload = sq.Expr("payload - 'resetToken'")

// Repo provides outbox persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new outbox repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Enqueue inserts a pending notification due immediately.
func (r *Repo) Enqueue(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return nil, fmt.Errorf("notification marshal payload: %w", err)
	}

	q := postgres.Builder.Insert(table).
		Columns("id", "event", "recipient", "payload", "status", "max_attempts", "next_attempt_at").
		Values(n.ID, string(n.Event), n.Recipient, payload,
			string(domain.NotificationStatusPending), n.MaxAttempts, n.NextAttemptAt).
		Suffix(returning)

	created, err := scanNotification(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return created, nil
}

// GetByID returns an outbox row by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	n, err := scanNotification(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return n, nil
}

// LeaseDue picks up to limit pending rows due at now, oldest due first, and
// moves their next attempt to now+lease so that no other relay takes them.
// Rows locked by a concurrent relay are skipped.
func (r *Repo) LeaseDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]domain.Notification, error) {
	q := postgres.Builder.Update(table).
		Set("next_attempt_at", now.Add(lease)).
		Where(sq.Expr(
			"id IN (SELECT id FROM "+table+
				" WHERE status = ? AND next_attempt_at <= ?"+
				" ORDER BY next_attempt_at, id LIMIT ? FOR UPDATE SKIP LOCKED)",
			string(domain.NotificationStatusPending), now, limit,
		)).
		Suffix(returning)

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("lease notifications: %w", err)
	}
	defer rows.Close()

	leased := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		leased = append(leased, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lease notifications: %w", err)
	}

	return leased, nil
}

// MarkSent records a successful delivery. Like MarkFailed it clears the
// reset token from the stored payload.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.Builder.Update(table).
		Set("status", string(domain.NotificationStatusSent)).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("sent_at", at).
		Set("last_error", nil).
		Set("payload", scrubbedPayload).
		Where(sq.Eq{"id": id, "status": string(domain.NotificationStatusPending)})

	return r.exec(ctx, q, id)
}

// MarkRetry records a failed attempt and schedules the next one.
func (r *Repo) MarkRetry(ctx context.Context, id uuid.UUID, next time.Time, lastErr string) error {
	q := postgres.Builder.Update(table).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("next_attempt_at", next).
		Set("last_error", lastErr).
		Where(sq.Eq{"id": id, "status": string(domain.NotificationStatusPending)})

	return r.exec(ctx, q, id)
}

// MarkFailed records a final failed attempt. The row is not retried.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error {
	q := postgres.Builder.Update(table).
		Set("status", string(domain.NotificationStatusFailed)).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", lastErr).
		Set("payload", scrubbedPayload).
		Where(sq.Eq{"id": id, "status": string(domain.NotificationStatusPending)})

	return r.exec(ctx, q, id)
}

// PurgeSent deletes delivered rows sent before the cutoff and returns how
// many were removed. Pending and failed rows are kept.
func (r *Repo) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	q := postgres.Builder.Delete(table).
		Where(sq.Eq{"status": string(domain.NotificationStatusSent)}).
		Where(sq.Lt{"sent_at": before})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return 0, fmt.Errorf("purge sent notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) exec(ctx context.Context, q sq.Sqlizer, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n             domain.Notification
		event, status string
		payload       []byte
	)
	if err := row.Scan(
		&n.ID, &event, &n.Recipient, &payload, &status, &n.Attempts, &n.MaxAttempts,
		&n.NextAttemptAt, &n.LastError, &n.CreatedAt, &n.SentAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, &n.Payload); err != nil {
		return nil, fmt.Errorf("notification %s unmarshal payload: %w", n.ID, err)
	}
	n.Event = domain.NotificationEvent(event)
	n.Status = domain.NotificationStatus(status)
	return &n, nil
}
