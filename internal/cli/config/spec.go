package config

import (
	"time"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/core/service"
	"github.com/yndnr/simianauth-go/internal/infra/converter"
)

// CLIConfig is the configuration for simianauth (~/.simianauth/cli.yaml).
type CLIConfig struct {
	Auth      AuthConfig      `koanf:"auth" json:"auth" yaml:"auth"`
	Converter ConverterConfig `koanf:"converter" json:"converter" yaml:"converter"`
	TLS       TLSConfig       `koanf:"tls" json:"tls" yaml:"tls"`
	Log       LogConfig       `koanf:"log" json:"log" yaml:"log"`
	Metrics   MetricsConfig   `koanf:"metrics" json:"metrics" yaml:"metrics"`
	Output    OutputConfig    `koanf:"output" json:"output" yaml:"output"`
}

// AuthConfig holds management server settings.
type AuthConfig struct {
	Server     string        `koanf:"server" json:"server" yaml:"server"`
	Token      string        `koanf:"token" json:"token,omitempty" yaml:"token,omitempty"` // literal token or .plist path
	CookieName string        `koanf:"cookie_name" json:"cookie_name" yaml:"cookie_name"`
	Timeout    time.Duration `koanf:"timeout" json:"timeout" yaml:"timeout"`
}

// ConverterConfig selects the plist converter.
type ConverterConfig struct {
	Mode    string        `koanf:"mode" json:"mode" yaml:"mode"` // auto, plutil, native
	Binary  string        `koanf:"binary" json:"binary" yaml:"binary"`
	Timeout time.Duration `koanf:"timeout" json:"timeout" yaml:"timeout"` // 0 disables
}

// TLSConfig holds trust roots and the client identity.
type TLSConfig struct {
	CAFile             string `koanf:"ca_file" json:"ca_file,omitempty" yaml:"ca_file,omitempty"`
	CertFile           string `koanf:"cert_file" json:"cert_file,omitempty" yaml:"cert_file,omitempty"`
	KeyFile            string `koanf:"key_file" json:"key_file,omitempty" yaml:"key_file,omitempty"`
	PKCS12File         string `koanf:"pkcs12_file" json:"pkcs12_file,omitempty" yaml:"pkcs12_file,omitempty"`
	PKCS12Password     string `koanf:"pkcs12_password" json:"pkcs12_password,omitempty" yaml:"pkcs12_password,omitempty"` // never saved
	InsecureSkipVerify bool   `koanf:"insecure_skip_verify" json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`    // debug, info, warn, error
	Format string `koanf:"format" json:"format" yaml:"format"` // text, json
}

// MetricsConfig configures the Prometheus textfile output.
type MetricsConfig struct {
	Textfile string `koanf:"textfile" json:"textfile,omitempty" yaml:"textfile,omitempty"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format"` // table, json, yaml
}

// DefaultAuthTimeout bounds one request to the management server.
const DefaultAuthTimeout = 30 * time.Second

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Auth: AuthConfig{
			CookieName: domain.DefaultAuthTokenCookie,
			Timeout:    DefaultAuthTimeout,
		},
		Converter: ConverterConfig{
			Mode:    string(converter.ModeAuto),
			Binary:  converter.DefaultPlutilPath,
			Timeout: service.DefaultConverterTimeout,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// ToSessionConfig returns the per-invocation session map.
func (c *CLIConfig) ToSessionConfig() domain.SessionConfig {
	cfg := domain.SessionConfig{
		domain.KeyServer:     c.Auth.Server,
		domain.KeyCookieName: c.Auth.CookieName,
	}
	if c.Auth.Token != "" {
		cfg.SetToken(c.Auth.Token)
	}
	return cfg
}

// ResolverConfig returns the token resolver settings.
func (c *CLIConfig) ResolverConfig() service.TokenResolverConfig {
	return service.TokenResolverConfig{
		CookieName: c.Auth.CookieName,
		Timeout:    c.Converter.Timeout,
	}
}

// ConverterOptions returns the converter factory options.
func (c *CLIConfig) ConverterOptions() converter.Options {
	return converter.Options{
		Mode:   converter.Mode(c.Converter.Mode),
		Binary: c.Converter.Binary,
	}
}
