// Package services holds the business logic between controllers and
// repositories. Services return sentinel errors that controllers map onto
// HTTP responses.
package services

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrProvisioning is returned when a new account cannot be given a
	// customer profile, for example when the customer role group is
	// missing. The whole registration rolls back in that case.
	ErrProvisioning = errors.New("could not provision customer profile")
)

// ValidationError carries per-field messages for input that failed
// validation. Controllers render it as a 422 with the field map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// NewValidationError wraps a field->message map produced by the validate
// package or by service-level checks.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
