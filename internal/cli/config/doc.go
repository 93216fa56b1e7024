// Package config provides CLI configuration for simianauth.
//
//   - spec.go: CLIConfig struct (~/.simianauth/cli.yaml)
//   - loader.go: layered loading, validation and saving
//
// Configuration includes the management server and token, the plist
// converter, TLS identity, logging, metrics and output preferences.
package config
