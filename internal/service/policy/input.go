package policy

import (
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const (
	maxFloodZoneLen = 16
	maxNameLen      = 200
	maxListLimit    = 500
)

// CreateInput holds parameters for issuing a policy.
type CreateInput struct {
	Policyholder domain.Policyholder
	Premium      domain.Money
	Coverage     domain.Coverage
	StartDate    time.Time
	EndDate      time.Time
	FloodZone    string
}

func (i *CreateInput) normalize() {
	i.FloodZone = strings.TrimSpace(i.FloodZone)
	i.Policyholder.Name = strings.TrimSpace(i.Policyholder.Name)
	i.Policyholder.Email = strings.ToLower(strings.TrimSpace(i.Policyholder.Email))
	i.Policyholder.Version = domain.PolicyholderSchemaVersion
	i.Coverage.Version = domain.PolicyholderSchemaVersion
	i.StartDate = truncateDay(i.StartDate)
	i.EndDate = truncateDay(i.EndDate)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = validatePolicyholder(errs, i.Policyholder)
	errs = validateCoverage(errs, i.Coverage)

	errs = validateAmount(errs, "premium", i.Premium)
	errs = validateDates(errs, i.StartDate, i.EndDate)
	errs = validateFloodZone(errs, i.FloodZone)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the editable fields of a policy.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Policyholder *domain.Policyholder
	Premium      *domain.Money
	Coverage     *domain.Coverage
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *domain.PolicyStatus
	FloodZone    *string
}

func (i *UpdateInput) normalize() {
	if i.FloodZone != nil {
		z := strings.TrimSpace(*i.FloodZone)
		i.FloodZone = &z
	}
	if i.Policyholder != nil {
		h := *i.Policyholder
		h.Name = strings.TrimSpace(h.Name)
		h.Email = strings.ToLower(strings.TrimSpace(h.Email))
		h.Version = domain.PolicyholderSchemaVersion
		i.Policyholder = &h
	}
	if i.Coverage != nil {
		c := *i.Coverage
		c.Version = domain.PolicyholderSchemaVersion
		i.Coverage = &c
	}
	if i.StartDate != nil {
		d := truncateDay(*i.StartDate)
		i.StartDate = &d
	}
	if i.EndDate != nil {
		d := truncateDay(*i.EndDate)
		i.EndDate = &d
	}
}

// Validate validates the fields present in the update. Date ordering is
// checked after the patch is merged with the stored policy.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Policyholder != nil {
		errs = validatePolicyholder(errs, *i.Policyholder)
	}
	if i.Coverage != nil {
		errs = validateCoverage(errs, *i.Coverage)
	}
	if i.Premium != nil {
		errs = validateAmount(errs, "premium", *i.Premium)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: active, expired, cancelled"})
	}
	if i.FloodZone != nil {
		errs = validateFloodZone(errs, *i.FloodZone)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.PolicyPatch {
	return domain.PolicyPatch{
		Policyholder: i.Policyholder,
		Premium:      i.Premium,
		Coverage:     i.Coverage,
		StartDate:    i.StartDate,
		EndDate:      i.EndDate,
		Status:       i.Status,
		FloodZone:    i.FloodZone,
	}
}

// ListInput holds parameters for listing active policies.
type ListInput struct {
	Limit int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Limit < 0 || i.Limit > maxListLimit {
		return domain.NewValidationError("limit", "must be between 0 and 500")
	}
	return nil
}

func validatePolicyholder(errs []domain.FieldError, h domain.Policyholder) []domain.FieldError {
	if h.Name == "" {
		errs = append(errs, domain.FieldError{Field: "policyholder.name", Message: "required"})
	} else if len(h.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "policyholder.name", Message: "too long"})
	}

	if h.Email == "" {
		errs = append(errs, domain.FieldError{Field: "policyholder.email", Message: "required"})
	} else if addr, err := mail.ParseAddress(h.Email); err != nil || addr.Address != h.Email {
		errs = append(errs, domain.FieldError{Field: "policyholder.email", Message: "invalid email format"})
	}

	if h.ConstructionYear != nil && (*h.ConstructionYear < 1600 || *h.ConstructionYear > 9999) {
		errs = append(errs, domain.FieldError{Field: "policyholder.constructionYear", Message: "out of range"})
	}
	return errs
}

func validateCoverage(errs []domain.FieldError, c domain.Coverage) []domain.FieldError {
	errs = validateAmount(errs, "coverage.buildingLimit", c.BuildingLimit)
	errs = validateAmount(errs, "coverage.contentsLimit", c.ContentsLimit)
	return validateAmount(errs, "coverage.deductible", c.Deductible)
}

func validateAmount(errs []domain.FieldError, field string, m domain.Money) []domain.FieldError {
	switch {
	case m.IsNegative():
		return append(errs, domain.FieldError{Field: field, Message: "must be non-negative"})
	case m > domain.MaxMoney:
		return append(errs, domain.FieldError{Field: field, Message: "must not exceed " + domain.MaxMoney.String()})
	}
	return errs
}

func validateDates(errs []domain.FieldError, start, end time.Time) []domain.FieldError {
	if start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "required"})
	}
	if end.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "required"})
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	return errs
}

func validateFloodZone(errs []domain.FieldError, zone string) []domain.FieldError {
	if zone == "" {
		return append(errs, domain.FieldError{Field: "floodZone", Message: "required"})
	}
	if len(zone) > maxFloodZoneLen {
		return append(errs, domain.FieldError{Field: "floodZone", Message: "too long"})
	}
	return errs
}
