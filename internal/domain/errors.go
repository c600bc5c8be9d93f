package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services.
var (
	// ErrStoreUnavailable is returned when the backing store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreNotConfigured is returned by every operation when the process
	// was started without a database and without an in-memory fallback.
	ErrStoreNotConfigured = fmt.Errorf("%w: database not configured", ErrStoreUnavailable)
)

// ValidationError reports the first input field that failed validation.
// swagger:model ValidationError
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
