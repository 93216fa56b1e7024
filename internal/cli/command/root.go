// Package command provides CLI command definitions for simianauth.
//
// It uses urfave/cli/v2 for command parsing.
package command

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/simianauth-go/internal/cli/config"
	"github.com/yndnr/simianauth-go/internal/cli/connection"
	"github.com/yndnr/simianauth-go/internal/cli/output"
	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/core/service"
	"github.com/yndnr/simianauth-go/internal/infra/buildinfo"
	"github.com/yndnr/simianauth-go/internal/infra/converter"
	"github.com/yndnr/simianauth-go/internal/infra/tlsroots"
	"github.com/yndnr/simianauth-go/internal/telemetry/logger"
	"github.com/yndnr/simianauth-go/internal/telemetry/metric"
)

const runtimeKey = "runtime"

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "simianauth",
		Usage:   "Obtain and release Simian management session tokens",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			LogoutCommand(),
			TokenCommand(),
			ConfigCommand(),
		},
		Before: setup,
		After:  teardown,
	}

	return app
}

// flagKeys maps global flags to the configuration keys they override.
var flagKeys = map[string]string{
	"server":           "auth.server",
	"token":            "auth.token",
	"cookie-name":      "auth.cookie_name",
	"timeout":          "auth.timeout",
	"converter":        "converter.mode",
	"converter-binary": "converter.binary",
	"ca-file":          "tls.ca_file",
	"cert":             "tls.cert_file",
	"key":              "tls.key_file",
	"pkcs12":           "tls.pkcs12_file",
	"insecure":         "tls.insecure_skip_verify",
	"log-format":       "log.format",
	"metrics-textfile": "metrics.textfile",
	"output":           "output.format",
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (default ~/.simianauth/cli.yaml)",
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Management server address (e.g., simian.example.com)",
		},
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "Token string or plist filename",
		},
		&cli.StringFlag{
			Name:   "cookie-name",
			Usage:  "Cookie that carries the token",
			Hidden: true,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout for the management server",
		},
		&cli.StringFlag{
			Name:  "converter",
			Usage: "Plist converter: auto, plutil, native",
		},
		&cli.StringFlag{
			Name:  "converter-binary",
			Usage: "Path to plutil",
		},
		&cli.StringFlag{
			Name:  "ca-file",
			Usage: "PEM file with additional trusted CA certificates",
		},
		&cli.StringFlag{
			Name:  "cert",
			Usage: "Client certificate (PEM)",
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "Client private key (PEM)",
		},
		&cli.StringFlag{
			Name:  "pkcs12",
			Usage: "Client identity bundle (PKCS#12); password from SIMIANAUTH_TLS_PKCS12_PASSWORD",
		},
		&cli.BoolFlag{
			Name:  "insecure",
			Usage: "Skip server certificate verification",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Print only the token",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging on stderr",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file after each run",
		},
	}
}

// flagOverrides collects the explicitly set global flags as config keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for flagName, key := range flagKeys {
		if !c.IsSet(flagName) {
			continue
		}
		overrides[key] = c.Value(flagName)
	}
	if c.Bool("verbose") {
		overrides["log.level"] = "debug"
	}
	return overrides
}

// Runtime holds the state shared by all commands of one invocation.
type Runtime struct {
	Config     *config.CLIConfig
	ConfigPath string
	Logger     logger.Logger
	Metrics    *metric.Registry
	RunID      string
	Quiet      bool

	ctx context.Context
	out io.Writer
}

// setup loads configuration and builds the runtime.
func setup(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path, flagOverrides(c))
	if err != nil {
		return err
	}

	errOut := c.App.ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errOut,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	runID := logger.NewRunID()
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx := logger.WithRunID(logger.WithLogger(parent, log), runID)

	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = &Runtime{
		Config:     cfg,
		ConfigPath: path,
		Logger:     log.With("run_id", runID),
		Metrics:    metric.NewRegistry(),
		RunID:      runID,
		Quiet:      c.Bool("quiet"),
		ctx:        ctx,
		out:        out,
	}
	return nil
}

// teardown writes the metrics textfile when one is configured.
func teardown(c *cli.Context) error {
	rt := GetRuntime(c)
	if rt == nil {
		return nil
	}
	return rt.Metrics.WriteTextfile(rt.Config.Metrics.Textfile, time.Now())
}

// GetRuntime retrieves the runtime from context.
func GetRuntime(c *cli.Context) *Runtime {
	if c == nil || c.App == nil {
		return nil
	}
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt
	}
	return nil
}

func mustRuntime(c *cli.Context) (*Runtime, error) {
	rt := GetRuntime(c)
	if rt == nil {
		return nil, fmt.Errorf("runtime not initialized")
	}
	return rt, nil
}

// Context returns the invocation context carrying the logger and run ID.
func (rt *Runtime) Context() context.Context {
	if rt.ctx == nil {
		return context.Background()
	}
	return rt.ctx
}

// Out returns the writer for command results.
func (rt *Runtime) Out() io.Writer {
	return rt.out
}

// Formatter returns the formatter for the configured output format.
func (rt *Runtime) Formatter() (output.Formatter, error) {
	format, err := output.ParseFormat(rt.Config.Output.Format)
	if err != nil {
		return nil, domain.ErrConfigInvalid.WithDetails(err.Error())
	}
	return output.NewFormatter(format), nil
}

// Resolver builds the token resolver for the configured converter.
func (rt *Runtime) Resolver() (*service.TokenResolver, error) {
	if err := rt.Config.Validate(); err != nil {
		return nil, err
	}

	conv, err := converter.New(rt.Config.ConverterOptions())
	if err != nil {
		return nil, domain.ErrConfigInvalid.WithCause(err).WithDetails(err.Error())
	}
	rt.Logger.Debug("plist converter selected", "converter", conv.Name())

	return service.NewTokenResolver(conv, rt.Config.ResolverConfig(),
		service.WithLogger(rt.Logger),
		service.WithMetrics(rt.Metrics),
	), nil
}

// AuthClient builds the management server client with its TLS identity.
func (rt *Runtime) AuthClient() (*connection.AuthClient, error) {
	cfg := rt.Config
	if cfg.Auth.Server == "" {
		return nil, domain.ErrServerRequired
	}

	pool, err := tlsroots.LoadPool(cfg.TLS.CAFile)
	if err != nil {
		return nil, domain.ErrConfigInvalid.WithCause(err).WithDetails(err.Error())
	}

	opts := tlsroots.IdentityOptions{
		CertFile:       cfg.TLS.CertFile,
		KeyFile:        cfg.TLS.KeyFile,
		PKCS12File:     cfg.TLS.PKCS12File,
		PKCS12Password: cfg.TLS.PKCS12Password,
	}
	var identity *tls.Certificate
	if !opts.Empty() {
		identity, err = tlsroots.LoadIdentity(opts)
		if err != nil {
			return nil, domain.ErrIdentityInvalid.WithCause(err).WithDetails(err.Error())
		}
	}
	tlsConfig := tlsroots.ClientConfig(pool, identity, cfg.TLS.InsecureSkipVerify)
	if cfg.TLS.InsecureSkipVerify {
		rt.Logger.Warn("server certificate verification disabled")
	}

	client := connection.NewAuthClient(connection.Options{
		Server:     cfg.Auth.Server,
		CookieName: cfg.Auth.CookieName,
		Timeout:    cfg.Auth.Timeout,
		TLSConfig:  tlsConfig,
		Logger:     rt.Logger,
	})
	rt.Logger.Debug("auth client ready", "server", client.BaseURL(), "client_cert", identity != nil)
	return client, nil
}

// SessionService wires the resolver and the auth client. The client is
// built on the first login or logout request, after the token checks.
func (rt *Runtime) SessionService() (*service.SessionService, error) {
	resolver, err := rt.Resolver()
	if err != nil {
		return nil, err
	}
	return service.NewSessionService(resolver, &authExecutor{rt: rt},
		service.WithLogger(rt.Logger),
		service.WithMetrics(rt.Metrics),
	), nil
}

// authExecutor builds the auth client on first use.
type authExecutor struct {
	rt     *Runtime
	client *connection.AuthClient
}

func (e *authExecutor) authClient() (*connection.AuthClient, error) {
	if e.client == nil {
		client, err := e.rt.AuthClient()
		if err != nil {
			return nil, err
		}
		e.client = client
	}
	return e.client, nil
}

func (e *authExecutor) Login(ctx context.Context, cfg domain.SessionConfig) (*domain.LoginResult, error) {
	client, err := e.authClient()
	if err != nil {
		return nil, err
	}
	return client.Login(ctx, cfg)
}

func (e *authExecutor) Logout(ctx context.Context, cfg domain.SessionConfig) error {
	client, err := e.authClient()
	if err != nil {
		return err
	}
	return client.Logout(ctx, cfg)
}
