package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// External services
	ErrPaymentProvider = errors.New("payment provider error")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Camp errors
var (
	ErrCampNotFound = errors.New("camp not found")
)

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("registration not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
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

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error naming the offending field
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewPaymentProviderError wraps a payment provider failure, preserving the
// provider's own message for diagnostics
func NewPaymentProviderError(message string) *CustomError {
	return &CustomError{
		Err:     ErrPaymentProvider,
		Message: message,
	}
}

// FieldOf extracts the offending field from a validation error, if any
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
