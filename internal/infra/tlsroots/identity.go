package tlsroots

import (
	"bytes"
	"crypto/tls"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// ErrNoIdentity is returned when no client certificate source is configured.
var ErrNoIdentity = errors.New("tlsroots: no client identity configured")

// IdentityOptions names the client certificate sources. A PKCS#12 bundle
// takes precedence over a PEM pair.
type IdentityOptions struct {
	CertFile       string
	KeyFile        string
	PKCS12File     string
	PKCS12Password string
}

// Empty reports whether no identity source is set.
func (o IdentityOptions) Empty() bool {
	return o.PKCS12File == "" && o.CertFile == "" && o.KeyFile == ""
}

// LoadIdentity loads the client certificate described by opts.
func LoadIdentity(opts IdentityOptions) (*tls.Certificate, error) {
	switch {
	case opts.PKCS12File != "":
		return loadPKCS12(opts.PKCS12File, opts.PKCS12Password)
	case opts.CertFile != "" && opts.KeyFile != "":
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("tlsroots: load key pair: %w", err)
		}
		return &cert, nil
	case opts.CertFile != "" || opts.KeyFile != "":
		return nil, errors.New("tlsroots: certificate and key must be set together")
	default:
		return nil, ErrNoIdentity
	}
}

func loadPKCS12(path, password string) (*tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tlsroots: read pkcs12 file %s: %w", path, err)
	}

	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return nil, fmt.Errorf("tlsroots: decode pkcs12 %s: %w", path, err)
	}

	var buf bytes.Buffer
	for _, b := range blocks {
		if err := pem.Encode(&buf, b); err != nil {
			return nil, fmt.Errorf("tlsroots: encode pem: %w", err)
		}
	}

	// X509KeyPair picks the CERTIFICATE and PRIVATE KEY blocks out of the
	// same buffer.
	cert, err := tls.X509KeyPair(buf.Bytes(), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("tlsroots: load pkcs12 key pair: %w", err)
	}
	return &cert, nil
}
