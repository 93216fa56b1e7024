package connection

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/infra/buildinfo"
	"github.com/yndnr/simianauth-go/internal/telemetry/logger"
)

const (
	// AuthPath is the management server's token endpoint.
	AuthPath = "/auth"

	// DefaultTimeout bounds one request.
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 64 << 10
)

// Options configures an AuthClient.
type Options struct {
	// Server is the management server address. A bare host gets https://.
	Server string
	// CookieName is the cookie the server issues the token under.
	CookieName string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// TLSConfig carries trust roots and the client identity.
	TLSConfig *tls.Config
	// Transport overrides the HTTP transport; TLSConfig is ignored when set.
	Transport http.RoundTripper
	// Logger receives request diagnostics.
	Logger logger.Logger
}

// AuthClient performs login and logout against the management server.
type AuthClient struct {
	baseURL    string
	cookieName string
	client     *http.Client
	userAgent  string
	logger     logger.Logger
}

// NewAuthClient creates a new AuthClient.
func NewAuthClient(opts Options) *AuthClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = domain.DefaultAuthTokenCookie
	}

	transport := opts.Transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = opts.TLSConfig
		transport = t
	}

	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	return &AuthClient{
		baseURL:    normalizeServer(opts.Server),
		cookieName: cookieName,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: buildinfo.UserAgent(),
		logger:    log,
	}
}

// normalizeServer ensures the address has a scheme and no trailing slash.
func normalizeServer(server string) string {
	server = strings.TrimRight(strings.TrimSpace(server), "/")
	if server == "" {
		return ""
	}
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "https://" + server
	}
	return server
}

// BaseURL returns the base URL of the client.
func (c *AuthClient) BaseURL() string {
	return c.baseURL
}

// baseFor returns the server from cfg when set, otherwise the client's.
func (c *AuthClient) baseFor(cfg domain.SessionConfig) (string, error) {
	base := c.baseURL
	if s := normalizeServer(cfg.Server()); s != "" {
		base = s
	}
	if base == "" {
		return "", domain.ErrServerRequired
	}
	return base, nil
}

func (c *AuthClient) cookieFor(cfg domain.SessionConfig) string {
	if name := cfg.Get(domain.KeyCookieName); name != "" {
		return name
	}
	return c.cookieName
}

// Login obtains a new token. The client certificate in the TLS config is
// the credential.
func (c *AuthClient) Login(ctx context.Context, cfg domain.SessionConfig) (*domain.LoginResult, error) {
	base, err := c.baseFor(cfg)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+AuthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.addHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.ErrLoginFailed.WithCause(err).WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if err := ParseError(resp); err != nil {
		return nil, domain.ErrLoginFailed.WithCause(err).WithDetails(err.Error())
	}

	name := c.cookieFor(cfg)
	for _, ck := range resp.Cookies() {
		if ck.Name != name {
			continue
		}
		c.logger.Debug("login returned token cookie", "cookie", name+"="+ck.Value, "server", base)
		return &domain.LoginResult{
			Token:   ck.Value,
			Server:  base,
			Expires: ck.Expires,
		}, nil
	}

	return nil, domain.ErrLoginNoToken.WithDetailsf("no %s cookie from %s", name, base)
}

// Logout releases the token held in cfg.
func (c *AuthClient) Logout(ctx context.Context, cfg domain.SessionConfig) error {
	token := cfg.Token()
	if token == "" {
		return domain.ErrTokenMissing
	}

	base, err := c.baseFor(cfg)
	if err != nil {
		return err
	}

	u := base + AuthPath + "?" + url.Values{"logout": {"True"}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.addHeaders(req)
	req.Header.Set("Cookie", c.cookieFor(cfg)+"="+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.ErrLogoutFailed.WithCause(err).WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if err := ParseError(resp); err != nil {
		return domain.ErrLogoutFailed.WithCause(err).WithDetails(err.Error())
	}
	c.logger.Debug("logout accepted", "server", base, "status", resp.StatusCode)
	return nil
}

// addHeaders adds common headers.
func (c *AuthClient) addHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
}

// ParseError returns nil for a 2xx response and an error describing the
// failure otherwise. JSON bodies of the form {"code","message"} are used
// when present. The body is left for the caller to close.
func ParseError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var errResp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		if errResp.Code != "" {
			return fmt.Errorf("[%s] %s", errResp.Code, errResp.Message)
		}
		return errors.New(errResp.Message)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
