package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// Authentication and abuse-mitigation error types
const (
	ErrorTypeRateLimited     ErrorType = "rate_limited"
	ErrorTypeMisconfigured   ErrorType = "misconfigured"
	ErrorTypeUpstreamFailure ErrorType = "upstream_failure"
)

// AuthError wraps AppError with security-relevant context used by the
// login and session paths.
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Expected failures (wrong password) stay out of the error log.
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
	// RetryAfter carries the retry-after hint for rate limited responses
	RetryAfter time.Duration
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for a failed login.
// The message never reveals which check failed.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Invalid credentials",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewRateLimitedError creates an error for throttled logins or API calls.
// retryAfter is surfaced to the client as a hint.
func NewRateLimitedError(retryAfter time.Duration) *AuthError {
	detail := "Please try again later"
	if retryAfter > 0 {
		detail = fmt.Sprintf("Please try again in %s", retryAfter.Round(time.Second))
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeRateLimited,
			Message: "Too many requests",
			Code:    http.StatusTooManyRequests,
			Details: detail,
		},
		ShouldLog:     true,
		SecurityEvent: true,
		RetryAfter:    retryAfter,
	}
}

// NewSessionInvalidError creates an error for missing, malformed or
// expired sessions. Deliberately generic.
func NewSessionInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Invalid or expired session",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewMisconfiguredError creates an error for missing required configuration,
// such as an unset admin password. Fatal to the operation and logged loudly.
func NewMisconfiguredError(what string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeMisconfigured,
			Message: "Server is not configured for this operation",
			Code:    http.StatusInternalServerError,
			Details: what,
		},
		ShouldLog:     true,
		SecurityEvent: false,
	}
}

// NewUpstreamError creates an error for key-value store or object storage
// failures. The original error is logged by the caller, never exposed.
func NewUpstreamError(service string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUpstreamFailure,
			Message: "Upstream service error",
			Code:    http.StatusBadGateway,
			Details: service,
		},
		ShouldLog:     true,
		SecurityEvent: false,
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
