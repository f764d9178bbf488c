package apperrors

import "errors"

// Sentinel errors recognized by the HTTP error mapping.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError carries the field-specific message returned to the client.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error with a client-facing message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
