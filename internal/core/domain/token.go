// Package domain defines the core domain models for simianauth.
package domain

import (
	"strings"
	"time"
)

const (
	// DefaultAuthTokenCookie is the cookie name the management service
	// issues the session token under.
	DefaultAuthTokenCookie = "Auth1Token"

	// PlistExtension is the only file extension accepted as a token file.
	PlistExtension = ".plist"

	// HeadersKey is the plist key holding the HTTP header lines.
	HeadersKey = "AdditionalHttpHeaders"
)

// CookieHeaderPrefix returns the header line prefix that carries the token
// for the given cookie name, e.g. "Cookie: Auth1Token=".
func CookieHeaderPrefix(cookieName string) string {
	return "Cookie: " + cookieName + "="
}

// ExtractCookieToken scans header lines in order and returns the token of
// the first line matching the cookie prefix. The value is truncated at the
// first ';'. A matching line with an empty value yields ("", true).
func ExtractCookieToken(headers []string, cookieName string) (string, bool) {
	prefix := CookieHeaderPrefix(cookieName)
	for _, h := range headers {
		if !strings.HasPrefix(h, prefix) {
			continue
		}
		token := h[len(prefix):]
		if i := strings.IndexByte(token, ';'); i >= 0 {
			token = token[:i]
		}
		return token, true
	}
	return "", false
}

// HasPlistExtension reports whether path names a property-list file.
func HasPlistExtension(path string) bool {
	return strings.HasSuffix(path, PlistExtension)
}

// Conversion is the captured result of one document converter run.
type Conversion struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// OK reports whether the conversion exited cleanly and produced output.
func (c *Conversion) OK() bool {
	return c != nil && c.ExitCode == 0 && len(c.Stdout) > 0
}

// LoginResult is what a successful login hands back to the CLI.
type LoginResult struct {
	Token   string    `json:"token" yaml:"token"`
	Server  string    `json:"server" yaml:"server"`
	Expires time.Time `json:"expires,omitempty" yaml:"expires,omitempty"`
}
