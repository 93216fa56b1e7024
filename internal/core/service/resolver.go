package service

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/telemetry/logger"
	"github.com/yndnr/simianauth-go/internal/telemetry/metric"
	"github.com/yndnr/simianauth-go/pkg/plist"
)

// DefaultConverterTimeout bounds a single converter run.
const DefaultConverterTimeout = 30 * time.Second

// Converter normalizes a plist file of any encoding to XML.
type Converter interface {
	Name() string
	Convert(ctx context.Context, path string) (*domain.Conversion, error)
}

// TokenResolverConfig holds resolver settings.
type TokenResolverConfig struct {
	// CookieName is the cookie carrying the token in AdditionalHttpHeaders.
	// Defaults to domain.DefaultAuthTokenCookie.
	CookieName string

	// Timeout bounds each converter run. Zero disables the bound.
	Timeout time.Duration
}

// DefaultTokenResolverConfig returns the default resolver settings.
func DefaultTokenResolverConfig() TokenResolverConfig {
	return TokenResolverConfig{
		CookieName: domain.DefaultAuthTokenCookie,
		Timeout:    DefaultConverterTimeout,
	}
}

// TokenResolver maps a --token parameter to a literal token.
//
// Resolution failures are never errors: they come back as found == false
// and the caller decides whether that is fatal.
type TokenResolver struct {
	converter  Converter
	cookieName string
	timeout    time.Duration
	logger     logger.Logger
	metrics    *metric.Registry
}

// NewTokenResolver creates a resolver that converts token files with conv.
func NewTokenResolver(conv Converter, cfg TokenResolverConfig, opts ...Option) *TokenResolver {
	o := applyOptions(opts)
	if cfg.CookieName == "" {
		cfg.CookieName = domain.DefaultAuthTokenCookie
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}

	return &TokenResolver{
		converter:  conv,
		cookieName: cfg.CookieName,
		timeout:    cfg.Timeout,
		logger:     o.logger,
		metrics:    o.metrics,
	}
}

// CookieName returns the cookie name the resolver looks for.
func (r *TokenResolver) CookieName() string {
	return r.cookieName
}

// Resolve returns the token for input. Empty input is not resolved and
// yields ("", false). Input that does not name an existing regular file is
// returned unchanged as a literal token. Otherwise the file is read with
// LoadFromFile.
func (r *TokenResolver) Resolve(ctx context.Context, input string) (string, bool) {
	if input == "" {
		return "", false
	}
	if !IsTokenFile(input) {
		r.metrics.RecordResolution(metric.SourceLiteral, metric.OutcomeFound)
		return input, true
	}
	return r.LoadFromFile(ctx, input)
}

// LoadFromFile extracts the token from a plist file. Only ".plist" files
// are read; others yield found == false without running the converter.
// An empty cookie value yields ("", true).
func (r *TokenResolver) LoadFromFile(ctx context.Context, path string) (token string, found bool) {
	log := contextLogger(ctx, r.logger).With("path", path)

	defer func() {
		outcome := metric.OutcomeNotFound
		if found {
			outcome = metric.OutcomeFound
		}
		r.metrics.RecordResolution(metric.SourceFile, outcome)
		log.Debug("token file resolution finished", "found", found)
	}()

	if !domain.HasPlistExtension(path) {
		log.Debug("token file is not a plist, skipping")
		return "", false
	}

	log.Debug("reading plist token file", "converter", r.converter.Name())
	conv, err := r.convert(ctx, path)
	if err != nil {
		log.Debug("plist conversion failed", "error", err)
		return "", false
	}
	if conv == nil {
		log.Debug("plist converter returned no result")
		return "", false
	}
	if len(conv.Stderr) > 0 {
		log.Debug("plist converter stderr", "stderr", strings.TrimSpace(string(conv.Stderr)))
	}
	if !conv.OK() {
		log.Debug("plist converter returned no document", "exit_code", conv.ExitCode, "stdout_bytes", len(conv.Stdout))
		return "", false
	}

	doc := plist.New(conv.Stdout)
	if err := doc.Parse(); err != nil {
		log.Debug("converted plist failed to parse", "error", err)
		return "", false
	}

	headers, ok := doc.Strings(domain.HeadersKey)
	if !ok {
		log.Debug("plist has no header list", "key", domain.HeadersKey)
		return "", false
	}

	token, found = domain.ExtractCookieToken(headers, r.cookieName)
	if !found {
		log.Debug("no cookie header for token", "cookie", r.cookieName, "headers", len(headers))
		return "", false
	}

	log.Debug("found token cookie header", "header", domain.CookieHeaderPrefix(r.cookieName)+token)
	return token, true
}

// convert runs the converter under the configured timeout. The derived
// context is cancelled on every return path.
func (r *TokenResolver) convert(ctx context.Context, path string) (*domain.Conversion, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	conv, err := r.converter.Convert(ctx, path)

	outcome := metric.OutcomeOK
	if err != nil || !conv.OK() {
		outcome = metric.OutcomeFailed
	}
	r.metrics.RecordConversion(r.converter.Name(), outcome, time.Since(start))

	return conv, err
}

// IsTokenFile reports whether path names an existing regular file.
// Symlinks are followed.
func IsTokenFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
