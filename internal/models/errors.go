package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers map them to
// HTTP statuses and the Arabic user-facing messages.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("resource conflict")
	ErrInvalidInput     = errors.New("invalid input")
)

// ValidationError represents a field-level validation failure with a
// localized, user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
