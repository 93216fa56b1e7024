package logger

import (
	"log/slog"
	"strings"
)

// Key patterns whose string values are fully redacted.
var sensitiveKeyPatterns = []string{
	"token",
	"password",
	"secret",
	"credential",
	"private",
}

// Key patterns holding header lines; only the part after the first '='
// is redacted so the cookie name stays visible.
var headerKeyPatterns = []string{
	"header",
	"cookie",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive rewrites an attribute whose key suggests it carries a
// token or credential.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	strVal := a.Value.String()
	if strVal == "" {
		return a
	}

	keyLower := strings.ToLower(a.Key)
	for _, pattern := range headerKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return slog.String(a.Key, RedactHeader(strVal))
		}
	}
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return slog.String(a.Key, MaskToken(strVal))
		}
	}
	return a
}

// MaskToken partially masks a token: first 3 and last 3 characters for
// values longer than 12, fully redacted otherwise.
func MaskToken(value string) string {
	if len(value) <= 12 {
		return redactedValue
	}
	return value[:3] + "..." + value[len(value)-3:]
}

// RedactHeader keeps a header line up to and including the first '=' and
// redacts the rest, e.g. "Cookie: Auth1Token=***REDACTED***".
func RedactHeader(line string) string {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return line
	}
	if i == len(line)-1 {
		return line
	}
	return line[:i+1] + redactedValue
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	for _, pattern := range headerKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
