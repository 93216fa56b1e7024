// Package domain defines the core domain models for simianauth.
//
// Domain models are plain values without IO dependencies:
//
//   - SessionConfig: per-invocation option map, including the token entry
//   - Token helpers: cookie header prefix matching and extraction
//   - Conversion: captured output of a plist converter run
//   - Errors: ClientError and the coded sentinels surfaced by the CLI
package domain
