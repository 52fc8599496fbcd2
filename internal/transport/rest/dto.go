package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/service/auth"
	"github.com/heartmarshall/floodinsure-backend/internal/service/policy"
)

const dateLayout = "2006-01-02"

// date is a calendar date in JSON. It decodes "2006-01-02" or an RFC 3339
// timestamp and encodes as "2006-01-02".
type date struct{ time.Time }

func (d *date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date: %q is neither YYYY-MM-DD nor RFC 3339", s)
	}
	d.Time = t
	return nil
}

func (d date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(dateLayout))
}

func datePtr(d *date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		Status:    u.Status.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      userResponse `json:"user"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
		User:      toUserResponse(result.User),
	}
}

// ---------------------------------------------------------------------------
// Policies and assessments
// ---------------------------------------------------------------------------

type policyResponse struct {
	ID           string              `json:"id"`
	PolicyNumber string              `json:"policyNumber"`
	Policyholder domain.Policyholder `json:"policyholder"`
	Premium      domain.Money        `json:"premium"`
	Coverage     domain.Coverage     `json:"coverage"`
	StartDate    date                `json:"startDate"`
	EndDate      date                `json:"endDate"`
	Status       string              `json:"status"`
	RiskLevel    string              `json:"riskLevel"`
	FloodZone    string              `json:"floodZone"`
	CreatedBy    string              `json:"createdBy"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func toPolicyResponse(p *domain.Policy) policyResponse {
	return policyResponse{
		ID:           p.ID.String(),
		PolicyNumber: p.PolicyNumber,
		Policyholder: p.Policyholder,
		Premium:      p.Premium,
		Coverage:     p.Coverage,
		StartDate:    date{p.StartDate},
		EndDate:      date{p.EndDate},
		Status:       p.Status.String(),
		RiskLevel:    p.RiskLevel.String(),
		FloodZone:    p.FloodZone,
		CreatedBy:    p.CreatedBy.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type policyDetailsResponse struct {
	policyResponse
	RiskAssessments []assessmentResponse `json:"riskAssessments"`
}

func toPolicyDetailsResponse(d *policy.Details) policyDetailsResponse {
	history := make([]assessmentResponse, len(d.Assessments))
	for i := range d.Assessments {
		history[i] = toAssessmentResponse(&d.Assessments[i])
	}
	return policyDetailsResponse{policyResponse: toPolicyResponse(d.Policy), RiskAssessments: history}
}

type assessmentResponse struct {
	ID                    string                   `json:"id"`
	PolicyID              string                   `json:"policyId"`
	RiskScore             int                      `json:"riskScore"`
	FloodZoneCategory     string                   `json:"floodZoneCategory"`
	HistoricalClaimsCount int                      `json:"historicalClaimsCount"`
	PredictedAnnualLoss   domain.Money             `json:"predictedAnnualLoss"`
	AssessmentFactors     domain.AssessmentFactors `json:"assessmentFactors"`
	LastUpdated           time.Time                `json:"lastUpdated"`
	NextAssessmentDate    time.Time                `json:"nextAssessmentDate"`
	CreatedAt             time.Time                `json:"createdAt"`
	UpdatedAt             time.Time                `json:"updatedAt"`
}

func toAssessmentResponse(a *domain.RiskAssessment) assessmentResponse {
	return assessmentResponse{
		ID:                    a.ID.String(),
		PolicyID:              a.PolicyID.String(),
		RiskScore:             a.RiskScore,
		FloodZoneCategory:     a.FloodZoneCategory,
		HistoricalClaimsCount: a.HistoricalClaimsCount,
		PredictedAnnualLoss:   a.PredictedAnnualLoss,
		AssessmentFactors:     a.Factors,
		LastUpdated:           a.LastUpdated,
		NextAssessmentDate:    a.NextAssessmentDate,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

type analyticsResponse struct {
	FloodZoneCategory string  `json:"floodZoneCategory"`
	AverageRiskScore  float64 `json:"averageRiskScore"`
	TotalAssessments  int     `json:"totalAssessments"`
}

// ---------------------------------------------------------------------------
// Claims
// ---------------------------------------------------------------------------

type claimResponse struct {
	ID                  string        `json:"id"`
	PolicyID            string        `json:"policyId"`
	ClaimNumber         string        `json:"claimNumber"`
	ClaimAmount         domain.Money  `json:"claimAmount"`
	IncidentDescription string        `json:"incidentDescription"`
	IncidentDate        time.Time     `json:"incidentDate"`
	ClaimDate           time.Time     `json:"claimDate"`
	Status              string        `json:"status"`
	Photos              []string      `json:"photos"`
	Documents           []string      `json:"documents"`
	AdjustorNotes       *string       `json:"adjustorNotes,omitempty"`
	ApprovedAmount      *domain.Money `json:"approvedAmount,omitempty"`
	SubmittedBy         string        `json:"submittedBy"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

func toClaimResponse(c *domain.Claim) claimResponse {
	return claimResponse{
		ID:                  c.ID.String(),
		PolicyID:            c.PolicyID.String(),
		ClaimNumber:         c.ClaimNumber,
		ClaimAmount:         c.ClaimAmount,
		IncidentDescription: c.IncidentDescription,
		IncidentDate:        c.IncidentDate,
		ClaimDate:           c.ClaimDate,
		Status:              c.Status.String(),
		Photos:              nonNil(c.Photos),
		Documents:           nonNil(c.Documents),
		AdjustorNotes:       c.AdjustorNotes,
		ApprovedAmount:      c.ApprovedAmount,
		SubmittedBy:         c.SubmittedBy.String(),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
