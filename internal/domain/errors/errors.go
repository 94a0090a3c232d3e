// Package errors defines domain-level errors with HTTP semantics.
package errors

import (
	"net/http"

	"beacon/internal/errors"
)

// AppError is the contract for errors that carry presentation metadata.
// The HTTP layer renders any error implementing it without switching on type.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	ErrorMessage() string
	Details() map[string]any
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode int
	code     string
	message  string
	details  map[string]any
	cause    error
}

// NewBaseError creates a BaseError with the given HTTP status, stable error
// code and human-readable message.
func NewBaseError(httpCode int, code string, message string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		code:     code,
		message:  message,
	}
}

func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

func (e *BaseError) HTTPCode() int           { return e.httpCode }
func (e *BaseError) ErrorCode() string       { return e.code }
func (e *BaseError) ErrorMessage() string    { return e.message }
func (e *BaseError) Details() map[string]any { return e.details }
func (e *BaseError) Unwrap() error           { return e.cause }

// WithDetails returns a copy carrying structured detail fields.
func (e *BaseError) WithDetails(details map[string]any) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithMessage returns a copy with the message replaced.
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := *e
	clone.message = message

	return &clone
}

// WithCause returns a copy wrapping the underlying error.
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// Sentinel domain errors. Handlers and usecases return these (optionally
// decorated via WithDetails/WithMessage) and the error middleware renders them.
var (
	ErrValidation        = NewBaseError(http.StatusBadRequest, "VALIDATION_ERROR", "request validation failed")
	ErrQuotaExceeded     = NewBaseError(http.StatusTooManyRequests, "QUOTA_EXCEEDED", "notification quota exceeded")
	ErrRadiusExceedsPlan = NewBaseError(http.StatusBadRequest, "RADIUS_EXCEEDS_PLAN", "requested radius exceeds plan limit")
	ErrMissingAddress    = NewBaseError(http.StatusBadRequest, "MISSING_ADDRESS", "sender has no address on file")
	ErrGeocodeFailure    = NewBaseError(http.StatusBadRequest, "GEOCODE_FAILURE", "sender address could not be geocoded")
	ErrPlanNotSelected   = NewBaseError(http.StatusBadRequest, "PLAN_NOT_SELECTED", "sender has not selected a subscription plan")
	ErrPushNotConfigured = NewBaseError(http.StatusServiceUnavailable, "PUSH_NOT_CONFIGURED", "push delivery is not configured")
	ErrDispatchNotFound  = NewBaseError(http.StatusNotFound, "DISPATCH_NOT_FOUND", "dispatch not found")
	ErrAccountNotFound   = NewBaseError(http.StatusNotFound, "ACCOUNT_NOT_FOUND", "account not found")
	ErrInvalidState      = NewBaseError(http.StatusConflict, "INVALID_STATE", "operation not allowed in current state")
	ErrForbidden         = NewBaseError(http.StatusForbidden, "FORBIDDEN", "operation not permitted for this account")
	ErrUnauthorized      = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
)

// Quota sub-reasons reported in the details of ErrQuotaExceeded. The first
// violated rule wins; later rules are not evaluated.
const (
	QuotaReasonDailyLimit    = "daily_limit_reached"
	QuotaReasonWeeklyLimit   = "weekly_limit_reached"
	QuotaReasonTooSoon       = "too_soon"
	QuotaReasonBlastsOff     = "blasts_disabled"
	QuotaReasonMonthlyBlasts = "monthly_limit_reached"
)

// QuotaExceeded builds an ErrQuotaExceeded carrying the violated rule.
func QuotaExceeded(reason string, details map[string]any) *BaseError {
	if details == nil {
		details = make(map[string]any, 1)
	}
	details["reason"] = reason

	return ErrQuotaExceeded.WithDetails(details)
}

// DatabaseExecuteError wraps a persistence failure so handlers surface a
// uniform 500 without leaking driver internals.
type DatabaseExecuteError struct {
	*BaseError
}

// NewDatabaseExecuteError wraps err as an internal database failure with a
// repository-provided context message.
func NewDatabaseExecuteError(err error, message string) *DatabaseExecuteError {
	return &DatabaseExecuteError{
		BaseError: NewBaseError(http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED", message).
			WithCause(errors.WithStack(err)),
	}
}

// AsAppError extracts an AppError from err's chain, if present.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
