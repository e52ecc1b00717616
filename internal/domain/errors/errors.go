package errors

import (
	"fmt"
	"net/http"

	"gateway/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
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

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Configuration errors. Raised at startup or when a caller passes an unusable TTL.
	ErrConfig = NewBaseError(
		http.StatusInternalServerError,
		"CONFIG_ERROR",
		"Service is misconfigured",
		"",
	)

	// Upstream provider errors
	ErrExchangeFailed = NewBaseError(
		http.StatusInternalServerError,
		"OAUTH_EXCHANGE_FAILED",
		"Authorization code exchange failed",
		"",
	)

	ErrProfileFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_FETCH_FAILED",
		"Failed to fetch the provider profile",
		"",
	)

	ErrIncompleteProfile = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_PROFILE",
		"Provider profile is missing required fields",
		"",
	)

	ErrMissingCode = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CODE",
		"Authorization code is required",
		"",
	)

	ErrStateMismatch = NewBaseError(
		http.StatusBadRequest,
		"STATE_MISMATCH",
		"Login state does not match",
		"",
	)

	// Account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProviderTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_TOKEN_NOT_FOUND",
		"No provider token stored for this user",
		"",
	)

	ErrAccountLinkDenied = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_LINK_DENIED",
		"This email already belongs to another account",
		"",
	)

	// Session errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	// Integrity errors. Never reveal which check failed.
	ErrDecryptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Reasons carried by AuthError.
const (
	AuthReasonMissing      = "missing"
	AuthReasonMalformed    = "malformed"
	AuthReasonExpired      = "expired"
	AuthReasonBadSignature = "bad_signature"
)

// AuthError is an access token rejection. Every reason renders the same 401 body.
type AuthError struct {
	Reason string
	err    error
}

// NewAuthError creates an AuthError for the given reason and cause
func NewAuthError(reason string, cause error) *AuthError {
	return &AuthError{Reason: reason, err: cause}
}

func (e *AuthError) Error() string {
	if e.err == nil {
		return "access token rejected: " + e.Reason
	}

	return fmt.Sprintf("access token rejected: %s: %v", e.Reason, e.err)
}

// Unwrap lets errors.Is match ErrUnauthorized.
func (e *AuthError) Unwrap() error {
	return ErrUnauthorized
}

func (e *AuthError) HTTPCode() int     { return ErrUnauthorized.HTTPCode() }
func (e *AuthError) ErrorCode() string { return ErrUnauthorized.ErrorCode() }
func (e *AuthError) Message() string   { return ErrUnauthorized.Message() }
func (e *AuthError) Details() string   { return "" }

// ProfileFetchError is returned when the provider answers the profile request with a non-success status.
type ProfileFetchError struct {
	Status int
	Body   string
}

func (e *ProfileFetchError) Error() string {
	return fmt.Sprintf("profile fetch failed with status %d: %s", e.Status, e.Body)
}

// Unwrap lets errors.Is match ErrProfileFetchFailed.
func (e *ProfileFetchError) Unwrap() error {
	return ErrProfileFetchFailed
}

func (e *ProfileFetchError) HTTPCode() int     { return ErrProfileFetchFailed.HTTPCode() }
func (e *ProfileFetchError) ErrorCode() string { return ErrProfileFetchFailed.ErrorCode() }
func (e *ProfileFetchError) Message() string   { return ErrProfileFetchFailed.Message() }
func (e *ProfileFetchError) Details() string   { return "" }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information. Kept out of HTTP responses.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
