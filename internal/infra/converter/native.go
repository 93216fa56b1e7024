package converter

import (
	"context"
	"fmt"
	"os"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/pkg/plist"
)

// Native converts in-process. Unreadable or undecodable files produce
// exit code 1 and a message on Stderr, matching plutil's behavior.
type Native struct{}

// NewNative creates the in-process converter.
func NewNative() *Native {
	return &Native{}
}

// Name implements Converter.
func (n *Native) Name() string {
	return "native"
}

// Convert reads path and re-encodes it as an XML plist.
func (n *Native) Convert(ctx context.Context, path string) (*domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("converter: native interrupted: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failed(fmt.Sprintf("%s: file does not exist or is not readable", path)), nil
	}

	xml, err := plist.ToXML(data)
	if err != nil {
		return failed(fmt.Sprintf("%s: %v", path, err)), nil
	}

	return &domain.Conversion{Stdout: xml}, nil
}

func failed(msg string) *domain.Conversion {
	return &domain.Conversion{
		Stderr:   []byte(msg + "\n"),
		ExitCode: 1,
	}
}
