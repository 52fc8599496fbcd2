// Package claim implements the Claim repository using PostgreSQL.
// Claims are soft-deleted: every read excludes rows with deleted_at set.
package claim

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

const table = "claims"

var columns = []string{
	"id", "policy_id", "claim_number", "claim_amount_cents", "incident_description",
	"incident_date", "claim_date", "status", "photos", "documents",
	"adjustor_notes", "approved_amount_cents", "submitted_by",
	"created_at", "updated_at", "deleted_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var notDeleted = sq.Eq{"deleted_at": nil}

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new claim repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a claim by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).Where(notDeleted)

	c, err := scanClaim(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "claim", id)
	}
	return c, nil
}

// GetByIDForUpdate returns a claim and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).Where(notDeleted).
		Suffix("FOR UPDATE")

	c, err := scanClaim(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "claim", id)
	}
	return c, nil
}

// List returns claims matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ClaimFilter) ([]domain.Claim, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(notDeleted).
		OrderBy("created_at DESC", "id DESC")
	if f.PolicyID != nil {
		q = q.Where(sq.Eq{"policy_id": *f.PolicyID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.SubmittedBy != nil {
		q = q.Where(sq.Eq{"submitted_by": *f.SubmittedBy})
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	claims := make([]domain.Claim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	return claims, nil
}

// CountByPolicy returns the number of claims filed against a policy.
func (r *Repo) CountByPolicy(ctx context.Context, policyID uuid.UUID) (int, error) {
	q := postgres.Builder.Select("COUNT(*)").From(table).
		Where(sq.Eq{"policy_id": policyID}).Where(notDeleted)

	var n int
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new claim and returns the persisted domain.Claim.
func (r *Repo) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	q := postgres.Builder.Insert(table).
		Columns("id", "policy_id", "claim_number", "claim_amount_cents", "incident_description",
			"incident_date", "claim_date", "status", "photos", "documents", "submitted_by").
		Values(c.ID, c.PolicyID, c.ClaimNumber, c.ClaimAmount.Cents(), c.IncidentDescription,
			c.IncidentDate, c.ClaimDate, string(c.Status), nonNil(c.Photos), nonNil(c.Documents), c.SubmittedBy).
		Suffix(returning)

	created, err := scanClaim(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "claim", c.ClaimNumber)
	}
	return created, nil
}

// UpdateStatus sets the status of a claim. Notes and approved amount are
// written only when non-nil.
func (r *Repo) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.ClaimStatus,
	notes *string,
	approved *domain.Money,
) (*domain.Claim, error) {
	q := postgres.Builder.Update(table).
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).Where(notDeleted).
		Suffix(returning)
	if notes != nil {
		q = q.Set("adjustor_notes", *notes)
	}
	if approved != nil {
		q = q.Set("approved_amount_cents", approved.Cents())
	}

	c, err := scanClaim(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "claim", id)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var (
		c        domain.Claim
		amount   int64
		approved *int64
		status   string
	)
	if err := row.Scan(
		&c.ID, &c.PolicyID, &c.ClaimNumber, &amount, &c.IncidentDescription,
		&c.IncidentDate, &c.ClaimDate, &status, &c.Photos, &c.Documents,
		&c.AdjustorNotes, &approved, &c.SubmittedBy,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.ClaimAmount = domain.Money(amount)
	c.Status = domain.ClaimStatus(status)
	if approved != nil {
		m := domain.Money(*approved)
		c.ApprovedAmount = &m
	}
	return &c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
