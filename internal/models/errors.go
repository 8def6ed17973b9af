package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API error taxonomy. Services return these (possibly
// wrapped) and handlers translate them to HTTP status codes.
var (
	// ErrInvalidCredentials is returned for any failed login attempt.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means no valid session was presented
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the session is valid but lacks the required role or ownership
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the requested resource does not exist
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or malformed request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
