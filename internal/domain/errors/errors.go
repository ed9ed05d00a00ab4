package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidState       = errors.New("entity not in required state")
	ErrJobTaken           = errors.New("transport job already assigned")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNotConnected       = errors.New("users are not connected")
	ErrSelfTarget         = errors.New("cannot target own account")
	ErrSignerUnavailable  = errors.New("external signer unavailable")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// Conflict maps failed lifecycle preconditions: the entity exists but is not
// in the state the action requires. Callers treat it as a no-op notice.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrInvalidState)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing
// error. The HTTP status is derived from the wrapped sentinel.
func NewError(message string, err error) error {
	return &AppError{
		Code:    codeFor(err),
		Message: message,
		Err:     err,
	}
}

func codeFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrJobTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrSignerUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}
