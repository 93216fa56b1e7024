// Package domain defines the core domain models for simianauth.
package domain

import (
	"errors"
	"fmt"
)

// ClientError is the structured error returned to the CLI when an
// invocation must abort. Codes follow the SA-<AREA>-<NNNN> format.
type ClientError struct {
	Code    string // Error code (e.g., "SA-TOKN-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support. Two client errors match when
// their codes are equal.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *ClientError) WithDetails(details string) *ClientError {
	return &ClientError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *ClientError) WithDetailsf(format string, args ...any) *ClientError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *ClientError) WithCause(cause error) *ClientError {
	return &ClientError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsClientError checks if an error is a ClientError with the given code.
// If code is empty, it only checks if the error is a ClientError.
func IsClientError(err error, code string) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		if code == "" {
			return true
		}
		return ce.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a ClientError.
func GetErrorCode(err error) string {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// ============================================================================
// Token Errors (TOKN)
// ============================================================================

var (
	// ErrTokenMissing indicates an operation that needs a token was run without one.
	ErrTokenMissing = NewClientError("SA-TOKN-4000", "no token or token filename specified")

	// ErrTokenFileUnresolved indicates a token file exists but no token could be extracted from it.
	ErrTokenFileUnresolved = NewClientError("SA-TOKN-4040", "could not load token from file")
)

// ============================================================================
// CLI / Configuration Errors (CLI, CONF)
// ============================================================================

var (
	// ErrActionUnknown indicates an unsupported action was dispatched.
	ErrActionUnknown = NewClientError("SA-CLI-4000", "unknown action")

	// ErrServerRequired indicates no management server address was configured.
	ErrServerRequired = NewClientError("SA-CONF-4000", "server address required")

	// ErrConfigInvalid indicates the CLI configuration failed validation.
	ErrConfigInvalid = NewClientError("SA-CONF-4001", "invalid configuration")
)

// ============================================================================
// Identity / Auth Errors (IDNT, AUTH)
// ============================================================================

var (
	// ErrIdentityInvalid indicates the client certificate identity could not be loaded.
	ErrIdentityInvalid = NewClientError("SA-IDNT-4000", "client identity invalid")

	// ErrLoginFailed indicates the server rejected the login request.
	ErrLoginFailed = NewClientError("SA-AUTH-4010", "login failed")

	// ErrLoginNoToken indicates a successful login response carried no token cookie.
	ErrLoginNoToken = NewClientError("SA-AUTH-4011", "login response contained no token")

	// ErrLogoutFailed indicates the server rejected the logout request.
	ErrLogoutFailed = NewClientError("SA-AUTH-4020", "logout failed")
)
