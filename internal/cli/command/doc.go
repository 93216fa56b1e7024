// Package command provides CLI commands for simianauth.
//
// Commands:
//
//   - login: obtain a session token with the client certificate
//   - logout: release a token given literally or as a plist file
//   - token resolve: print the token a --token value resolves to
//   - config show|validate|init: inspect and write ~/.simianauth/cli.yaml
//
// The root Before hook loads configuration and stores a Runtime in the
// app metadata; each command builds the services it needs from it.
package command
