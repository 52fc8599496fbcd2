package risk

import (
	"strings"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const maxZoneCategoryLen = 16

// UpsertInput holds an assessor's evaluation of a policy.
type UpsertInput struct {
	RiskScore           int
	FloodZoneCategory   string
	PredictedAnnualLoss domain.Money
	Factors             domain.AssessmentFactors
}

func (i *UpsertInput) normalize() {
	i.FloodZoneCategory = strings.TrimSpace(i.FloodZoneCategory)
	i.Factors.Version = domain.PolicyholderSchemaVersion
}

// Validate validates the upsert input.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsValidRiskScore(i.RiskScore) {
		errs = append(errs, domain.FieldError{Field: "riskScore", Message: "must be between 0 and 100"})
	}
	if i.FloodZoneCategory == "" {
		errs = append(errs, domain.FieldError{Field: "floodZoneCategory", Message: "required"})
	} else if len(i.FloodZoneCategory) > maxZoneCategoryLen {
		errs = append(errs, domain.FieldError{Field: "floodZoneCategory", Message: "too long"})
	}
	if !i.PredictedAnnualLoss.InRange() {
		errs = append(errs, domain.FieldError{Field: "predictedAnnualLoss", Message: "must be between 0 and " + domain.MaxMoney.String()})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
