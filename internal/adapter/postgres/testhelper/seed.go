package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Date returns midnight UTC of the given day, matching a DATE column.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedUser creates an active user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := Now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
		FirstName:    "Test",
		LastName:     "User " + suffix,
		Role:         role,
		Status:       domain.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, first_name, last_name, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPolicy creates an active policy owned by createdBy. mutate, if given,
// adjusts the policy before it is inserted.
func SeedPolicy(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, mutate ...func(*domain.Policy)) domain.Policy {
	t.Helper()

	now := Now()
	policy := domain.Policy{
		ID:           uuid.New(),
		PolicyNumber: domain.NewPolicyNumber(now) + uniqueSuffix()[:2],
		Policyholder: domain.Policyholder{
			Version: domain.PolicyholderSchemaVersion,
			Name:    "Pat Holder",
			Email:   "holder-" + uniqueSuffix() + "@example.com",
		},
		Premium: domain.NewMoney(1000, 0),
		Coverage: domain.Coverage{
			Version:       domain.PolicyholderSchemaVersion,
			BuildingLimit: domain.NewMoney(250000, 0),
			ContentsLimit: domain.NewMoney(100000, 0),
			Deductible:    domain.NewMoney(1000, 0),
		},
		StartDate: Date(now.Year(), now.Month(), now.Day()),
		EndDate:   Date(now.Year()+1, now.Month(), now.Day()),
		Status:    domain.PolicyStatusActive,
		RiskLevel: domain.RiskLevelHigh,
		FloodZone: "AE",
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range mutate {
		m(&policy)
	}

	holder, err := json.Marshal(policy.Policyholder)
	if err != nil {
		t.Fatalf("testhelper: SeedPolicy marshal policyholder: %v", err)
	}
	coverage, err := json.Marshal(policy.Coverage)
	if err != nil {
		t.Fatalf("testhelper: SeedPolicy marshal coverage: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO policies (id, policy_number, policyholder, premium_cents, coverage, start_date, end_date,
		                       status, risk_level, flood_zone, created_by, created_at, updated_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		policy.ID, policy.PolicyNumber, holder, policy.Premium.Cents(), coverage, policy.StartDate, policy.EndDate,
		string(policy.Status), string(policy.RiskLevel), policy.FloodZone, policy.CreatedBy,
		policy.CreatedAt, policy.UpdatedAt, policy.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPolicy: %v", err)
	}

	return policy
}

// SeedAssessment creates a risk assessment for policyID with the given score
// and zone category, stamped at createdAt.
func SeedAssessment(t *testing.T, pool *pgxpool.Pool, policyID uuid.UUID, score int, zone string, createdAt time.Time) domain.RiskAssessment {
	t.Helper()

	a := domain.RiskAssessment{
		ID:                  uuid.New(),
		PolicyID:            policyID,
		RiskScore:           score,
		FloodZoneCategory:   zone,
		PredictedAnnualLoss: domain.NewMoney(700, 0),
		Factors:             domain.AssessmentFactors{Version: 1, FloodZone: zone},
		LastUpdated:         createdAt,
		NextAssessmentDate:  domain.NextAssessmentDate(createdAt),
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}

	factors, err := json.Marshal(a.Factors)
	if err != nil {
		t.Fatalf("testhelper: SeedAssessment marshal factors: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO risk_assessments (id, policy_id, risk_score, flood_zone_category, historical_claims_count,
		                               predicted_annual_loss_cents, assessment_factors, last_updated,
		                               next_assessment_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.PolicyID, a.RiskScore, a.FloodZoneCategory, a.PredictedAnnualLoss.Cents(), factors,
		a.LastUpdated, a.NextAssessmentDate, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssessment: %v", err)
	}

	return a
}

// SeedClaim creates a submitted claim against policyID.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, policyID, submittedBy uuid.UUID, createdAt time.Time) domain.Claim {
	t.Helper()

	c := domain.Claim{
		ID:                  uuid.New(),
		PolicyID:            policyID,
		ClaimNumber:         domain.NewClaimNumber(createdAt) + uniqueSuffix()[:2],
		ClaimAmount:         domain.NewMoney(500, 0),
		IncidentDescription: "basement flooded",
		IncidentDate:        Date(createdAt.Year(), createdAt.Month(), createdAt.Day()),
		ClaimDate:           createdAt,
		Status:              domain.ClaimStatusSubmitted,
		Photos:              []string{},
		Documents:           []string{},
		SubmittedBy:         submittedBy,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO claims (id, policy_id, claim_number, claim_amount_cents, incident_description, incident_date,
		                     claim_date, status, photos, documents, submitted_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.PolicyID, c.ClaimNumber, c.ClaimAmount.Cents(), c.IncidentDescription, c.IncidentDate,
		c.ClaimDate, string(c.Status), c.Photos, c.Documents, c.SubmittedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim: %v", err)
	}

	return c
}
