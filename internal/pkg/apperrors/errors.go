package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrWorkLogNotFound = errors.New("work log not found for this date")
	ErrTodoNotFound    = errors.New("todo item not found")
)

// Assistant errors. The generative service is an opaque boundary: either the
// client never initialized, or a call against it failed. No further subtypes.
var (
	ErrAssistantUnavailable = errors.New("generative AI client not initialized")
	ErrAssistantCallFailed  = errors.New("generative AI call failed")
)

// NewNotFoundError creates a custom error wrapping ErrResourceNotFound with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a custom error wrapping ErrBadRequest with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}
