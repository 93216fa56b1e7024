package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/simianauth-go/internal/core/domain"
)

// fakeConverter returns the file bytes unchanged, or a canned result.
type fakeConverter struct {
	calls     int
	result    *domain.Conversion
	err       error
	nilResult bool
	block     bool
}

func (f *fakeConverter) Name() string { return "fake" }

func (f *fakeConverter) Convert(ctx context.Context, path string) (*domain.Conversion, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil || f.result != nil || f.nilResult {
		return f.result, f.err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &domain.Conversion{ExitCode: 1, Stderr: []byte(err.Error())}, nil
	}
	return &domain.Conversion{Stdout: data}, nil
}

// fakeExecutor records calls instead of talking to a server.
type fakeExecutor struct {
	loginCalls  int
	logoutCalls int
	lastToken   string
	err         error
}

func (f *fakeExecutor) Login(_ context.Context, cfg domain.SessionConfig) (*domain.LoginResult, error) {
	f.loginCalls++
	f.lastToken = cfg.Token()
	if f.err != nil {
		return nil, f.err
	}
	return &domain.LoginResult{Token: "issued", Server: cfg.Server()}, nil
}

func (f *fakeExecutor) Logout(_ context.Context, cfg domain.SessionConfig) error {
	f.logoutCalls++
	f.lastToken = cfg.Token()
	return f.err
}

var errExecutor = errors.New("executor failed")

// headerPlist renders an XML plist whose header list holds headers.
func headerPlist(headers ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AdditionalHttpHeaders</key>
	<array>
`)
	for _, h := range headers {
		b.WriteString("\t\t<string>" + h + "</string>\n")
	}
	b.WriteString(`	</array>
	<key>ServerURL</key>
	<string>https://manage.example.com</string>
</dict>
</plist>
`)
	return b.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func newTestResolver(conv Converter) *TokenResolver {
	return NewTokenResolver(conv, DefaultTokenResolverConfig())
}
