package command

import (
	"bytes"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

// mockServer is a TLS management server with per-path handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

// newMockServer creates a new mock server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := m.handlers[r.URL.Path]; ok {
			handler(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for a path.
func (m *mockServer) handle(path string, handler http.HandlerFunc) {
	m.handlers[path] = handler
}

// errorResponse writes an error response.
func errorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": message,
	})
}

// runResult captures one app invocation.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the full app with an isolated config file. The config path
// is returned for tests that inspect it.
func runApp(t *testing.T, args ...string) (runResult, string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "cli.yaml")
	return runAppWithConfig(t, cfgPath, args...), cfgPath
}

func runAppWithConfig(t *testing.T, cfgPath string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	full := append([]string{"simianauth", "--config", cfgPath}, args...)
	err := app.Run(full)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// testContext creates a CLI context with the global flags parsed from args.
func testContext(args ...string) *cli.Context {
	app := &cli.App{
		Name:     "test",
		Flags:    globalFlags(),
		Metadata: map[string]any{},
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}
	set.Parse(args)

	return cli.NewContext(app, set, nil)
}

// tokenPlist writes a plist token file holding the given header lines.
func tokenPlist(t *testing.T, headers ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>AdditionalHttpHeaders</key>
	<array>
`)
	for _, h := range headers {
		b.WriteString("\t\t<string>" + h + "</string>\n")
	}
	b.WriteString("\t</array>\n</dict>\n</plist>\n")

	path := filepath.Join(t.TempDir(), "ManagedInstalls.plist")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write plist: %v", err)
	}
	return path
}
