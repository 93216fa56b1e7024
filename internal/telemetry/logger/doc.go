// Package logger provides structured logging for simianauth.
//
//   - logger.go: slog-backed Logger, level handling, process default
//   - context.go: context propagation and ULID run IDs
//   - redact.go: masking of tokens and cookie header values
//
// Diagnostic trace points in the token resolver log at debug level and
// only show up with --verbose.
package logger
