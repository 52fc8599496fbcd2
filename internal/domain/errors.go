package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Broad error classes. The transport layer maps each to one HTTP status.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Refinements of the sentinels above. Callers that only care about the
// broad class can keep matching on the parent with errors.Is.
var (
	// ErrInvalidCredentials is returned by login for every credential failure
	// so that callers cannot tell which check rejected the attempt.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)

	// ErrPrecondition marks a request that is well-formed but not allowed in
	// the current state of the target entity.
	ErrPrecondition = fmt.Errorf("precondition failed: %w", ErrConflict)

	// ErrLastAdmin is returned when an operation would leave no active admin.
	ErrLastAdmin = fmt.Errorf("at least one active admin is required: %w", ErrConflict)

	// ErrInvalidTransition is returned for a claim status change that the
	// lifecycle does not permit.
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrConflict)
)

// FieldError names one rejected input field. Field uses the JSON path of
// the request body, e.g. "policyholder.email".
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field rejected by one input. It matches
// ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return ErrValidation.Error()
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return "validation: invalid " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors wraps the collected field errors of one input.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
