// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const (
	table = "users"

	defaultLimit = 50
	maxLimit     = 200
)

var columns = []string{
	"id", "email", "password_hash", "first_name", "last_name",
	"role", "status", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	u, err := scanUser(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByIDForUpdate returns a user and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")

	u, err := scanUser(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Expr("lower(email) = lower(?)", email))

	u, err := scanUser(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// List returns users matching the filter ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(clampLimit(f.Limit))).
		Offset(uint64(max(f.Offset, 0)))
	if f.Role != nil {
		q = q.Where(sq.Eq{"role": string(*f.Role)})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// LockActiveAdmins returns the IDs of all active admins and locks their rows
// until the surrounding transaction ends, so that concurrent role and status
// changes are serialized.
func (r *Repo) LockActiveAdmins(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.Builder.Select("id").From(table).
		Where(sq.Eq{"role": string(domain.UserRoleAdmin), "status": string(domain.UserStatusActive)}).
		OrderBy("id").
		Suffix("FOR UPDATE")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("lock active admins: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("lock active admins: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder.Insert(table).
		Columns("id", "email", "password_hash", "first_name", "last_name", "role", "status").
		Values(u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, string(u.Role), string(u.Status)).
		Suffix(returning)

	created, err := scanUser(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// Update applies the non-nil fields of patch and returns the updated user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder.Update(table).Where(sq.Eq{"id": id}).Suffix(returning)
	if patch.Email != nil {
		q = q.Set("email", *patch.Email)
	}
	if patch.FirstName != nil {
		q = q.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		q = q.Set("last_name", *patch.LastName)
	}
	if patch.Role != nil {
		q = q.Set("role", string(*patch.Role))
	}
	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}

	u, err := scanUser(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	q := postgres.Builder.Update(table).Set("password_hash", hash).Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetStatus sets the status of every listed user that does not already have
// it and returns the number of rows changed. Unknown IDs are ignored.
func (r *Repo) SetStatus(ctx context.Context, ids []uuid.UUID, status domain.UserStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := postgres.Builder.Update(table).
		Set("status", string(status)).
		Where(sq.Eq{"id": ids}).
		Where(sq.NotEq{"status": string(status)})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return 0, fmt.Errorf("set user status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u            domain.User
		role, status string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&role, &status, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	u.Status = domain.UserStatus(status)
	return &u, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}
