package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRiskScore = 0
	MaxRiskScore = 100

	// InitialRiskScore is recorded on the assessment created with a policy,
	// before any assessor has scored it.
	InitialRiskScore = 50

	// AssessmentValidityMonths is the interval until the next assessment is due.
	AssessmentValidityMonths = 12

	highRiskThreshold   = 70
	mediumRiskThreshold = 30
)

// RiskAssessment is a scored evaluation of a policy's flood risk.
type RiskAssessment struct {
	ID                    uuid.UUID
	PolicyID              uuid.UUID
	RiskScore             int
	FloodZoneCategory     string
	HistoricalClaimsCount int
	PredictedAnnualLoss   Money
	Factors               AssessmentFactors
	LastUpdated           time.Time
	NextAssessmentDate    time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AssessmentFactors records the inputs behind a risk score. Documented keys
// are typed fields; anything else lives in Extra.
type AssessmentFactors struct {
	Version          int               `json:"version"`
	FloodZone        string            `json:"floodZone,omitempty"`
	PropertyType     *string           `json:"propertyType,omitempty"`
	ConstructionYear *int              `json:"constructionYear,omitempty"`
	ElevationFeet    *float64          `json:"elevationFeet,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// RiskAnalytics aggregates assessments sharing a flood zone category.
type RiskAnalytics struct {
	FloodZoneCategory string
	AverageRiskScore  float64
	TotalAssessments  int
}

// IsValidRiskScore reports whether the score lies in the closed range [0, 100].
func IsValidRiskScore(score int) bool {
	return score >= MinRiskScore && score <= MaxRiskScore
}

// RiskLevelFromScore maps an assessor's score to a policy risk level.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return RiskLevelHigh
	case score >= mediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// NextAssessmentDate returns the date the next assessment is due for an
// assessment written at t.
func NextAssessmentDate(t time.Time) time.Time {
	return t.AddDate(0, AssessmentValidityMonths, 0)
}

// InitialPredictedLoss estimates the first-year loss from the premium (70%).
func InitialPredictedLoss(premium Money) (Money, error) {
	return premium.MulRatio(7, 10)
}
