package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/infra/confloader"
	"github.com/yndnr/simianauth-go/internal/infra/converter"
	"github.com/yndnr/simianauth-go/internal/telemetry/logger"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"table", "json", "yaml"}

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".simianauth", "cli.yaml")
}

// Load loads CLI configuration. Defaults are overlaid by the file at path,
// then SIMIANAUTH_* environment variables, then overrides (dotted keys such
// as "auth.server"). A missing file is not an error.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOptionalFile(),
		confloader.WithOverrides(overrides),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, domain.ErrConfigInvalid.WithCause(err).WithDetails(err.Error())
	}
	return cfg, nil
}

// Save writes cfg to path as YAML with mode 0600. The PKCS#12 password is
// never written.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0600)
}

// Sanitized returns a copy of c without the session token and the PKCS#12
// password.
func (c *CLIConfig) Sanitized() *CLIConfig {
	out := *c
	out.Auth.Token = ""
	out.TLS.PKCS12Password = ""
	return &out
}

// Marshal renders cfg as YAML without secrets.
func Marshal(cfg *CLIConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg.Sanitized())
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Validate checks the configuration for invalid values.
func (c *CLIConfig) Validate() error {
	if _, err := converter.ParseMode(c.Converter.Mode); err != nil {
		return domain.ErrConfigInvalid.WithDetails(err.Error())
	}
	if c.Converter.Timeout < 0 {
		return domain.ErrConfigInvalid.WithDetails("converter.timeout must not be negative")
	}
	if c.Auth.Timeout < 0 {
		return domain.ErrConfigInvalid.WithDetails("auth.timeout must not be negative")
	}
	if !validOutputFormat(c.Output.Format) {
		return domain.ErrConfigInvalid.WithDetailsf("output.format %q (want table, json or yaml)", c.Output.Format)
	}
	if !logger.ValidLevel(c.Log.Level) {
		return domain.ErrConfigInvalid.WithDetailsf("log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return domain.ErrConfigInvalid.WithDetailsf("log.format %q (want text or json)", c.Log.Format)
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return domain.ErrConfigInvalid.WithDetails("tls.cert_file and tls.key_file must be set together")
	}
	if c.TLS.PKCS12File != "" && c.TLS.CertFile != "" {
		return domain.ErrConfigInvalid.WithDetails("tls.pkcs12_file and tls.cert_file are mutually exclusive")
	}
	return nil
}

func validOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
