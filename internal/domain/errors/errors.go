// Package errors defines the domain's error taxonomy. Expected rejections are
// data (see entity.VerificationOutcome); the values here are what callers
// surface once a decision has been made or could not be made.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP-equivalent status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// ErrInvalidCredentials is the single externally visible rejection for every
	// reject reason, so callers cannot leak which one occurred.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"account store temporarily unavailable",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"secret hashing failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// StoreUnavailableError reports that the account store could not answer.
// It is not a rejection: the system was unable to decide.
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError wraps an infrastructure failure from the account store.
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

func (e *StoreUnavailableError) Error() string {
	if e.err == nil {
		return ErrStoreUnavailable.Error() + ": " + e.details
	}

	return ErrStoreUnavailable.Error() + ": " + e.details + ": " + e.err.Error()
}

// Unwrap exposes the infrastructure cause (e.g. context.DeadlineExceeded).
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, ErrStoreUnavailable) hold for every store failure.
func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func (e *StoreUnavailableError) HTTPCode() int {
	return ErrStoreUnavailable.HTTPCode()
}

func (e *StoreUnavailableError) ErrorCode() string {
	return ErrStoreUnavailable.ErrorCode()
}

func (e *StoreUnavailableError) Message() string {
	return ErrStoreUnavailable.Message()
}

func (e *StoreUnavailableError) Details() string {
	return e.details
}
