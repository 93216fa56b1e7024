package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func logJSON(t *testing.T, args ...any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("entry", args...)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	return logEntry
}

func TestRedactSensitive_LongToken(t *testing.T) {
	token := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	entry := logJSON(t, "token", token)

	got, _ := entry["token"].(string)
	if got == token {
		t.Fatal("token should be masked")
	}
	if got != "ABC...789" {
		t.Errorf("token = %q, want %q", got, "ABC...789")
	}
}

func TestRedactSensitive_ShortToken(t *testing.T) {
	entry := logJSON(t, "token", "abc123")
	if entry["token"] != redactedValue {
		t.Errorf("token = %v, want fully redacted", entry["token"])
	}
}

func TestRedactSensitive_EmptyValueUntouched(t *testing.T) {
	entry := logJSON(t, "token", "")
	if entry["token"] != "" {
		t.Errorf("token = %v, want empty", entry["token"])
	}
}

func TestRedactSensitive_Header(t *testing.T) {
	entry := logJSON(t, "header", "Cookie: Auth1Token=abc123;Path=/")

	got, _ := entry["header"].(string)
	if strings.Contains(got, "abc123") {
		t.Errorf("header leaked token: %q", got)
	}
	if got != "Cookie: Auth1Token="+redactedValue {
		t.Errorf("header = %q", got)
	}
}

func TestRedactSensitive_NonSensitive(t *testing.T) {
	entry := logJSON(t, "path", "/Library/Preferences/ManagedInstalls.plist", "exit_code", 1)
	if entry["path"] != "/Library/Preferences/ManagedInstalls.plist" {
		t.Errorf("path = %v", entry["path"])
	}
	if entry["exit_code"] != float64(1) {
		t.Errorf("exit_code = %v", entry["exit_code"])
	}
}

func TestRedactSensitive_Password(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("grouped", "pkcs12_password", "hunter2")

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("password leaked: %s", buf.String())
	}
}

func TestRedactHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cookie: Auth1Token=abc", "Cookie: Auth1Token=" + redactedValue},
		{"Cookie: Auth1Token=", "Cookie: Auth1Token="},
		{"X-Other: 1", "X-Other: 1"},
	}

	for _, tt := range tests {
		if got := RedactHeader(tt.in); got != tt.want {
			t.Errorf("RedactHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for _, k := range []string{"token", "Token", "resolved_token", "header", "cookie_name", "password"} {
		if !IsSensitiveKey(k) {
			t.Errorf("IsSensitiveKey(%q) = false", k)
		}
	}
	for _, k := range []string{"path", "server", "exit_code"} {
		if IsSensitiveKey(k) {
			t.Errorf("IsSensitiveKey(%q) = true", k)
		}
	}
}
