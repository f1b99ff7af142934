package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ===========================================================================
// Application Errors
// Standard error kinds shared by repositories, services and handlers.
// Each kind maps to one HTTP status code.
// ===========================================================================

// Sentinel errors, matched with errors.Is()
var (
	// ErrNotFound the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput malformed or missing input fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEntry unique constraint violated (e.g. username)
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInternal storage or aggregation failure
	ErrInternal = errors.New("internal server error")
)

// ===========================================================================
// AppError
// Carries a user facing message on top of a sentinel kind
// ===========================================================================

// AppError detailed application error
type AppError struct {
	// Err the wrapped sentinel (or cause)
	Err error

	// Message message safe to show to the caller
	Message string

	// Code machine readable code (e.g. "NOT_FOUND")
	Code string

	// StatusCode HTTP status code
	StatusCode int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error (for errors.Is/As)
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError from a sentinel error
func New(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: StatusCode(err),
		Code:       ErrorCode(err),
	}
}

// NotFound shorthand for New(ErrNotFound, "<entity> not found")
func NotFound(entity string) *AppError {
	return New(ErrNotFound, entity+" not found")
}

// Invalid shorthand for New(ErrInvalidInput, message)
func Invalid(message string) *AppError {
	return New(ErrInvalidInput, message)
}

// Duplicate shorthand for New(ErrDuplicateEntry, "<entity> already exists")
func Duplicate(entity string) *AppError {
	return New(ErrDuplicateEntry, entity+" already exists")
}

// Wrap adds context while keeping the chain intact
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// ===========================================================================
// Error Mapping Functions
// ===========================================================================

// StatusCode returns the HTTP status code for err
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateEntry):
		// a duplicate key is a violation of the input schema for this API
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the error code string for err
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrDuplicateEntry):
		return "DUPLICATE_ENTRY"
	default:
		return "INTERNAL_ERROR"
	}
}

// PublicMessage returns the message that may be shown to the caller.
// Internal failures never expose their detail.
func PublicMessage(err error, fallback string) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return fallback
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// Is helper for errors.Is()
func Is(err, target error) bool {
	return errors.Is(err, target)
}
