// Package policy implements the Policy repository using PostgreSQL.
// Policies are soft-deleted: every read excludes rows with deleted_at set.
package policy

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

const (
	table = "policies"

	defaultLimit = 100
	maxLimit     = 500
)

var columns = []string{
	"id", "policy_number", "policyholder", "premium_cents", "coverage",
	"start_date", "end_date", "status", "risk_level", "flood_zone",
	"created_by", "created_at", "updated_at", "deleted_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var notDeleted = sq.Eq{"deleted_at": nil}

// Repo provides policy persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new policy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a policy by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Policy, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).Where(notDeleted)

	p, err := scanPolicy(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "policy", id)
	}
	return p, nil
}

// GetByIDForUpdate returns a policy and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Policy, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).Where(notDeleted).
		Suffix("FOR UPDATE")

	p, err := scanPolicy(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "policy", id)
	}
	return p, nil
}

// List returns policies matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.PolicyFilter) ([]domain.Policy, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(notDeleted).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(clampLimit(f.Limit)))
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.EndBefore != nil {
		q = q.Where(sq.Lt{"end_date": *f.EndBefore})
	}
	if f.EndAfter != nil {
		q = q.Where(sq.GtOrEq{"end_date": *f.EndAfter})
	}
	if f.After != nil {
		q = q.Where("(created_at, id) < (?, ?)", f.After.CreatedAt, f.After.ID)
	}

	return r.collect(ctx, q, "list policies")
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new policy and returns the persisted domain.Policy.
func (r *Repo) Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	holder, coverage, err := marshalDocuments(p)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder.Insert(table).
		Columns("id", "policy_number", "policyholder", "premium_cents", "coverage",
			"start_date", "end_date", "status", "risk_level", "flood_zone", "created_by").
		Values(p.ID, p.PolicyNumber, holder, p.Premium.Cents(), coverage,
			p.StartDate, p.EndDate, string(p.Status), string(p.RiskLevel), p.FloodZone, p.CreatedBy).
		Suffix(returning)

	created, err := scanPolicy(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "policy", p.PolicyNumber)
	}
	return created, nil
}

// Update writes the editable fields of p. The policy number, risk level and
// ownership are left untouched.
func (r *Repo) Update(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	holder, coverage, err := marshalDocuments(p)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder.Update(table).
		SetMap(map[string]any{
			"policyholder":  holder,
			"premium_cents": p.Premium.Cents(),
			"coverage":      coverage,
			"start_date":    p.StartDate,
			"end_date":      p.EndDate,
			"status":        string(p.Status),
			"flood_zone":    p.FloodZone,
		}).
		Where(sq.Eq{"id": p.ID}).Where(notDeleted).
		Suffix(returning)

	updated, err := scanPolicy(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "policy", p.ID)
	}
	return updated, nil
}

// SetRiskLevel overwrites the derived risk level of a policy.
func (r *Repo) SetRiskLevel(ctx context.Context, id uuid.UUID, level domain.RiskLevel) error {
	q := postgres.Builder.Update(table).
		Set("risk_level", string(level)).
		Where(sq.Eq{"id": id}).Where(notDeleted)

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "policy", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("policy %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkExpired moves every active policy whose end date is before asOf to
// expired and returns the policies it changed.
func (r *Repo) MarkExpired(ctx context.Context, asOf time.Time) ([]domain.Policy, error) {
	q := postgres.Builder.Update(table).
		Set("status", string(domain.PolicyStatusExpired)).
		Where(sq.Eq{"status": string(domain.PolicyStatusActive)}).
		Where(sq.Lt{"end_date": asOf}).
		Where(notDeleted).
		Suffix(returning)

	return r.collect(ctx, q, "mark expired policies")
}

// SoftDelete marks a policy deleted. Its assessments and claims are kept.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Update(table).
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).Where(notDeleted)

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "policy", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("policy %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (r *Repo) collect(ctx context.Context, q sq.Sqlizer, op string) ([]domain.Policy, error) {
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	policies := make([]domain.Policy, 0)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		policies = append(policies, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return policies, nil
}

func marshalDocuments(p *domain.Policy) (holder, coverage []byte, err error) {
	holder, err = json.Marshal(p.Policyholder)
	if err != nil {
		return nil, nil, fmt.Errorf("policy marshal policyholder: %w", err)
	}
	coverage, err = json.Marshal(p.Coverage)
	if err != nil {
		return nil, nil, fmt.Errorf("policy marshal coverage: %w", err)
	}
	return holder, coverage, nil
}

func scanPolicy(row pgx.Row) (*domain.Policy, error) {
	var (
		p                 domain.Policy
		holder, coverage  []byte
		premium           int64
		status, riskLevel string
	)
	if err := row.Scan(
		&p.ID, &p.PolicyNumber, &holder, &premium, &coverage,
		&p.StartDate, &p.EndDate, &status, &riskLevel, &p.FloodZone,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(holder, &p.Policyholder); err != nil {
		return nil, fmt.Errorf("policy %s unmarshal policyholder: %w", p.ID, err)
	}
	if err := json.Unmarshal(coverage, &p.Coverage); err != nil {
		return nil, fmt.Errorf("policy %s unmarshal coverage: %w", p.ID, err)
	}

	p.Premium = domain.Money(premium)
	p.Status = domain.PolicyStatus(status)
	p.RiskLevel = domain.RiskLevel(riskLevel)
	return &p, nil
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
