package user

import (
	"net/mail"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

const (
	maxNameLen  = 100
	maxEmailLen = 254
	maxListSize = 200
	maxBulkIDs  = 500
)

// ListInput holds parameters for listing users. Nil fields do not filter.
type ListInput struct {
	Role   *domain.UserRole
	Status *domain.UserStatus
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of: admin, agent, policyholder"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: active, inactive"})
	}
	if i.Limit < 0 || i.Limit > maxListSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.UserFilter {
	return domain.UserFilter{Role: i.Role, Status: i.Status, Limit: i.Limit, Offset: i.Offset}
}

// UpdateInput holds the optional fields of a user update.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *domain.UserRole
	Status    *domain.UserStatus
}

func (i *UpdateInput) normalize() {
	if i.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &e
	}
	if i.FirstName != nil {
		f := strings.TrimSpace(*i.FirstName)
		i.FirstName = &f
	}
	if i.LastName != nil {
		l := strings.TrimSpace(*i.LastName)
		i.LastName = &l
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		if *i.Email == "" || len(*i.Email) > maxEmailLen {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
		} else if addr, err := mail.ParseAddress(*i.Email); err != nil || addr.Address != *i.Email {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
		}
	}
	if i.FirstName != nil && (*i.FirstName == "" || len(*i.FirstName) > maxNameLen) {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "must be 1-100 characters"})
	}
	if i.LastName != nil && (*i.LastName == "" || len(*i.LastName) > maxNameLen) {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "must be 1-100 characters"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of: admin, agent, policyholder"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: active, inactive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.UserPatch {
	return domain.UserPatch{
		Email:     i.Email,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Role:      i.Role,
		Status:    i.Status,
	}
}

// BulkStatusInput holds parameters for a bulk status change.
type BulkStatusInput struct {
	IDs    []uuid.UUID
	Status domain.UserStatus
}

func (i *BulkStatusInput) normalize() {
	ids := slices.Clone(i.IDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	i.IDs = slices.Compact(ids)
}

// Validate validates the bulk status input.
func (i BulkStatusInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case len(i.IDs) == 0:
		errs = append(errs, domain.FieldError{Field: "userIds", Message: "must be a non-empty array"})
	case len(i.IDs) > maxBulkIDs:
		errs = append(errs, domain.FieldError{Field: "userIds", Message: "too many ids"})
	case slices.Contains(i.IDs, uuid.Nil):
		errs = append(errs, domain.FieldError{Field: "userIds", Message: "must not contain empty ids"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: active, inactive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
