package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrSourceUnavailable marks a transient failure of one data source
	// (network, auth, malformed response). The orchestrator recovers from
	// it locally by continuing with the remaining sources.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrWordNotRecognized means no source produced any usable data for
	// the word. The lookup service converts it into a user-facing
	// "not found" with spelling suggestions.
	ErrWordNotRecognized = errors.New("word not recognized")

	// ErrLockTimeout means the per-word in-flight lock could not be
	// acquired within its bound; the caller should retry shortly.
	ErrLockTimeout = errors.New("enrichment lock timeout")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
