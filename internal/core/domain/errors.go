package domain

import "errors"

var (
	ErrEmailTaken          = errors.New("email already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrDefaultRoleNotFound = errors.New(`default role "employee" not found`)
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrNotAdmin            = errors.New("you must be an administrator to delete this user")
	ErrPermissionDenied    = errors.New("you do not have permission to delete this user")
)

// ValidationError reports which signup field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a default message.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "invalid " + field}
}

// NewValidationErrorMsg builds a ValidationError with an explicit message.
func NewValidationErrorMsg(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
