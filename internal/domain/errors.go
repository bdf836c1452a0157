package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrAlreadyProcessed = errors.New("already processed")
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// ApplyError reports that the Applier could not execute the catalog mutation
// of an approved change. The originating decide call fails with it and the
// change record remains pending; the admin retries manually once the cause
// (usually a vanished target or a storage failure) is resolved.
type ApplyError struct {
	RecordID uuid.UUID
	Err      error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply change %s: %v", e.RecordID, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// NewApplyError wraps err as an ApplyError for the given change record.
func NewApplyError(recordID uuid.UUID, err error) *ApplyError {
	return &ApplyError{RecordID: recordID, Err: err}
}
