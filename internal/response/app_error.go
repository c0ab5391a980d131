package response

import "fmt"

// Error codes shared between the service layer and the HTTP status mapping
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeAlreadyExists   = "ALREADY_EXISTS"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeUserBanned      = "USER_BANNED"
	ErrCodeContentRejected = "CONTENT_REJECTED"
	ErrCodeDuplicateFlag   = "DUPLICATE_FLAG"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// AppError is the error type returned by the service layer.
// Code selects the HTTP status in the handler layer; Message is user-visible;
// Details carries internal context and is logged, never sent to clients.
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
