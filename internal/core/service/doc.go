// Package service provides the simianauth session services.
//
// This package contains:
//
//   - TokenResolver: maps a --token parameter to a literal token, reading
//     .plist token files through a Converter
//   - SessionService: rewrites the session config in place and dispatches
//     login and logout to an AuthExecutor
//
// Resolution never fails with an error. A token that cannot be resolved
// is reported as not found and the session service turns that into a
// coded domain error.
package service
