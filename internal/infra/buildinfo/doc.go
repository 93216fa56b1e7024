// Package buildinfo provides build information for simianauth.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/simianauth-go/internal/infra/buildinfo.Version=1.0.0"
package buildinfo
