// Package domain defines the core domain models for simianauth.
package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestClientError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClientError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewClientError("SA-TEST-1000", "test message"),
			expected: "[SA-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewClientError("SA-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[SA-TEST-1001] test message: extra info",
		},
		{
			name:     "formatted details",
			err:      ErrTokenFileUnresolved.WithDetailsf("%s", "/tmp/token.plist"),
			expected: "[SA-TOKN-4040] could not load token from file: /tmp/token.plist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClientError_Is(t *testing.T) {
	err1 := NewClientError("SA-TEST-1000", "message 1")
	err2 := NewClientError("SA-TEST-1000", "message 2") // Same code, different message
	err3 := NewClientError("SA-TEST-1001", "message 1") // Different code

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-ClientError")
	}

	// Details do not change identity
	if !errors.Is(ErrTokenMissing.WithDetails("logout"), ErrTokenMissing) {
		t.Error("errors.Is should ignore details")
	}
}

func TestClientError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewClientError("SA-TEST-1000", "wrapper").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestClientError_CopiesDoNotMutateSentinel(t *testing.T) {
	_ = ErrLoginFailed.WithDetails("status 500").WithCause(errors.New("boom"))

	if ErrLoginFailed.Details != "" {
		t.Errorf("sentinel Details mutated: %q", ErrLoginFailed.Details)
	}
	if ErrLoginFailed.Cause != nil {
		t.Error("sentinel Cause mutated")
	}
}

func TestIsClientError(t *testing.T) {
	wrapped := fmt.Errorf("logout: %w", ErrTokenMissing)

	if !IsClientError(wrapped, "") {
		t.Error("IsClientError should detect wrapped ClientError")
	}
	if !IsClientError(wrapped, "SA-TOKN-4000") {
		t.Error("IsClientError should match code")
	}
	if IsClientError(wrapped, "SA-TOKN-4040") {
		t.Error("IsClientError should not match other code")
	}
	if IsClientError(errors.New("plain"), "") {
		t.Error("IsClientError should be false for plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(fmt.Errorf("x: %w", ErrLogoutFailed)); code != "SA-AUTH-4020" {
		t.Errorf("GetErrorCode() = %q, want %q", code, "SA-AUTH-4020")
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Errorf("GetErrorCode() = %q, want empty", code)
	}
}

func TestSentinelCodesUnique(t *testing.T) {
	sentinels := []*ClientError{
		ErrTokenMissing, ErrTokenFileUnresolved,
		ErrActionUnknown, ErrServerRequired, ErrConfigInvalid,
		ErrIdentityInvalid, ErrLoginFailed, ErrLoginNoToken, ErrLogoutFailed,
	}

	seen := make(map[string]bool)
	for _, s := range sentinels {
		if seen[s.Code] {
			t.Errorf("duplicate error code %s", s.Code)
		}
		seen[s.Code] = true
	}
}
