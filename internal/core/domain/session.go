// Package domain defines the core domain models for simianauth.
package domain

// Session configuration keys.
const (
	KeyToken      = "token"
	KeyServer     = "server"
	KeyCookieName = "cookie_name"
)

// SessionConfig maps option names to values for a single CLI invocation.
// Only the session preprocessor rewrites the token entry.
type SessionConfig map[string]string

// Get returns the value for key, or "" when absent.
func (c SessionConfig) Get(key string) string {
	if c == nil {
		return ""
	}
	return c[key]
}

// Set stores value under key.
func (c SessionConfig) Set(key, value string) {
	c[key] = value
}

// Token returns the configured token (literal, file path, or empty).
func (c SessionConfig) Token() string {
	return c.Get(KeyToken)
}

// SetToken replaces the token entry.
func (c SessionConfig) SetToken(token string) {
	c.Set(KeyToken, token)
}

// Server returns the management server address.
func (c SessionConfig) Server() string {
	return c.Get(KeyServer)
}

// CookieName returns the configured token cookie name, falling back to
// DefaultAuthTokenCookie.
func (c SessionConfig) CookieName() string {
	if name := c.Get(KeyCookieName); name != "" {
		return name
	}
	return DefaultAuthTokenCookie
}
