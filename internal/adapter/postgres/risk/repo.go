// Package risk implements the RiskAssessment repository using PostgreSQL.
// A policy accumulates assessments over time; the row with the newest
// created_at is authoritative.
package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const table = "risk_assessments"

var columns = []string{
	"id", "policy_id", "risk_score", "flood_zone_category", "historical_claims_count",
	"predicted_annual_loss_cents", "assessment_factors", "last_updated",
	"next_assessment_date", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides risk assessment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new risk assessment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Latest returns the most recent assessment of a policy.
func (r *Repo) Latest(ctx context.Context, policyID uuid.UUID) (*domain.RiskAssessment, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"policy_id": policyID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)

	a, err := scanAssessment(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "risk_assessment for policy", policyID)
	}
	return a, nil
}

// ListByPolicy returns the assessment history of a policy, latest first.
func (r *Repo) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.RiskAssessment, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"policy_id": policyID}).
		OrderBy("created_at DESC", "id DESC")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list risk assessments: %w", err)
	}
	defer rows.Close()

	history := make([]domain.RiskAssessment, 0)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan risk assessment: %w", err)
		}
		history = append(history, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list risk assessments: %w", err)
	}

	return history, nil
}

// Analytics averages the risk score of every assessment per flood zone
// category, ordered by category.
func (r *Repo) Analytics(ctx context.Context) ([]domain.RiskAnalytics, error) {
	q := postgres.Builder.
		Select("flood_zone_category", "AVG(risk_score)::float8", "COUNT(*)").
		From(table).
		GroupBy("flood_zone_category").
		OrderBy("flood_zone_category")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("risk analytics: %w", err)
	}
	defer rows.Close()

	result := make([]domain.RiskAnalytics, 0)
	for rows.Next() {
		var a domain.RiskAnalytics
		if err := rows.Scan(&a.FloodZoneCategory, &a.AverageRiskScore, &a.TotalAssessments); err != nil {
			return nil, fmt.Errorf("scan risk analytics: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("risk analytics: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new assessment.
func (r *Repo) Create(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error) {
	factors, err := json.Marshal(a.Factors)
	if err != nil {
		return nil, fmt.Errorf("risk assessment marshal factors: %w", err)
	}

	q := postgres.Builder.Insert(table).
		Columns("id", "policy_id", "risk_score", "flood_zone_category", "historical_claims_count",
			"predicted_annual_loss_cents", "assessment_factors", "last_updated", "next_assessment_date").
		Values(a.ID, a.PolicyID, a.RiskScore, a.FloodZoneCategory, a.HistoricalClaimsCount,
			a.PredictedAnnualLoss.Cents(), factors, a.LastUpdated, a.NextAssessmentDate).
		Suffix(returning)

	created, err := scanAssessment(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "risk_assessment", a.ID)
	}
	return created, nil
}

// Update overwrites the scored fields of an existing assessment.
func (r *Repo) Update(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error) {
	factors, err := json.Marshal(a.Factors)
	if err != nil {
		return nil, fmt.Errorf("risk assessment marshal factors: %w", err)
	}

	q := postgres.Builder.Update(table).
		SetMap(map[string]any{
			"risk_score":                  a.RiskScore,
			"flood_zone_category":         a.FloodZoneCategory,
			"historical_claims_count":     a.HistoricalClaimsCount,
			"predicted_annual_loss_cents": a.PredictedAnnualLoss.Cents(),
			"assessment_factors":          factors,
			"last_updated":                a.LastUpdated,
			"next_assessment_date":        a.NextAssessmentDate,
		}).
		Where(sq.Eq{"id": a.ID}).
		Suffix(returning)

	updated, err := scanAssessment(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "risk_assessment", a.ID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanAssessment(row pgx.Row) (*domain.RiskAssessment, error) {
	var (
		a       domain.RiskAssessment
		loss    int64
		factors []byte
	)
	if err := row.Scan(
		&a.ID, &a.PolicyID, &a.RiskScore, &a.FloodZoneCategory, &a.HistoricalClaimsCount,
		&loss, &factors, &a.LastUpdated, &a.NextAssessmentDate, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(factors, &a.Factors); err != nil {
		return nil, fmt.Errorf("risk assessment %s unmarshal factors: %w", a.ID, err)
	}
	a.PredictedAnnualLoss = domain.Money(loss)
	return &a, nil
}
