package claim

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const (
	maxDescriptionLen = 5000
	maxNotesLen       = 5000
	maxAttachments    = 20
	maxAttachmentLen  = 2048
)

// CreateInput holds parameters for filing a claim.
type CreateInput struct {
	PolicyID            uuid.UUID
	ClaimAmount         domain.Money
	IncidentDescription string
	IncidentDate        time.Time
	Photos              []string
	Documents           []string
}

func (i *CreateInput) normalize() {
	i.IncidentDescription = strings.TrimSpace(i.IncidentDescription)
	i.Photos = trimAll(i.Photos)
	i.Documents = trimAll(i.Documents)
}

// Validate validates the create input. now bounds the incident date.
func (i CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.PolicyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "policyId", Message: "required"})
	}
	if i.ClaimAmount <= 0 {
		errs = append(errs, domain.FieldError{Field: "claimAmount", Message: "must be positive"})
	} else if i.ClaimAmount > domain.MaxMoney {
		errs = append(errs, domain.FieldError{Field: "claimAmount", Message: "must not exceed " + domain.MaxMoney.String()})
	}
	if i.IncidentDescription == "" {
		errs = append(errs, domain.FieldError{Field: "incidentDescription", Message: "required"})
	} else if len(i.IncidentDescription) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "incidentDescription", Message: "too long"})
	}
	if i.IncidentDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "incidentDate", Message: "required"})
	} else if i.IncidentDate.After(now) {
		errs = append(errs, domain.FieldError{Field: "incidentDate", Message: "must not be in the future"})
	}
	errs = validateAttachments(errs, "photos", i.Photos)
	errs = validateAttachments(errs, "documents", i.Documents)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StatusInput holds an adjustor's decision on a claim.
type StatusInput struct {
	Status         domain.ClaimStatus
	AdjustorNotes  *string
	ApprovedAmount *domain.Money
}

func (i *StatusInput) normalize() {
	if i.AdjustorNotes != nil {
		n := strings.TrimSpace(*i.AdjustorNotes)
		i.AdjustorNotes = &n
	}
}

// Validate validates the status input.
func (i StatusInput) Validate() error {
	var errs []domain.FieldError

	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: submitted, under_review, approved, rejected"})
	}
	if i.AdjustorNotes != nil && len(*i.AdjustorNotes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "adjustorNotes", Message: "too long"})
	}
	if i.ApprovedAmount != nil {
		if !i.ApprovedAmount.InRange() {
			errs = append(errs, domain.FieldError{Field: "approvedAmount", Message: "must be between 0 and " + domain.MaxMoney.String()})
		} else if i.Status != domain.ClaimStatusApproved {
			errs = append(errs, domain.FieldError{Field: "approvedAmount", Message: "only allowed when approving"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds optional claim list filters.
type ListInput struct {
	PolicyID *uuid.UUID
	Status   *domain.ClaimStatus
}

// Validate validates the list filters.
func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "must be one of: submitted, under_review, approved, rejected")
	}
	return nil
}

func (i ListInput) filter() domain.ClaimFilter {
	return domain.ClaimFilter{PolicyID: i.PolicyID, Status: i.Status}
}

func trimAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for j, v := range items {
		out[j] = strings.TrimSpace(v)
	}
	return out
}

func validateAttachments(errs []domain.FieldError, field string, items []string) []domain.FieldError {
	if len(items) > maxAttachments {
		return append(errs, domain.FieldError{Field: field, Message: "too many entries"})
	}
	for _, v := range items {
		if v == "" || len(v) > maxAttachmentLen {
			return append(errs, domain.FieldError{Field: field, Message: "entries must be 1 to 2048 characters"})
		}
	}
	return errs
}
