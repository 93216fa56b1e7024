package converter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yndnr/simianauth-go/internal/core/domain"
)

// DefaultPlutilPath is where macOS ships plutil.
const DefaultPlutilPath = "/usr/bin/plutil"

// Mode selects a converter implementation.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModePlutil Mode = "plutil"
	ModeNative Mode = "native"
)

// Converter turns a plist file of any encoding into XML on Stdout.
type Converter interface {
	Name() string
	Convert(ctx context.Context, path string) (*domain.Conversion, error)
}

// Options configures New.
type Options struct {
	// Mode is auto, plutil or native. Empty means auto.
	Mode Mode
	// Binary overrides the plutil path.
	Binary string
}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModePlutil, ModeNative:
		return m, nil
	default:
		return "", fmt.Errorf("converter: unknown mode %q (want auto, plutil or native)", s)
	}
}

// New returns the converter for opts. In auto mode plutil is used when
// its binary can be found, otherwise the native converter.
func New(opts Options) (Converter, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	binary := opts.Binary
	if binary == "" {
		binary = DefaultPlutilPath
	}

	switch mode {
	case ModePlutil:
		return NewPlutil(binary), nil
	case ModeNative:
		return NewNative(), nil
	default:
		if _, err := exec.LookPath(binary); err == nil {
			return NewPlutil(binary), nil
		}
		return NewNative(), nil
	}
}
