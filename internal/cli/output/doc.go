// Package output provides output formatting for the simianauth CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: key/value table rendering
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
package output
