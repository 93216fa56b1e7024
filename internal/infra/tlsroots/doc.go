// Package tlsroots provides TLS material for the simianauth client.
//
//   - roots.go: system certificates plus an optional custom CA file
//   - identity.go: client certificate identity from a PEM pair or a
//     PKCS#12 bundle
package tlsroots
