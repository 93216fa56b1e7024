package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/yndnr/simianauth-go/internal/core/domain"
)

// waitDelay bounds how long Convert waits for the output pipes after the
// child has been killed.
const waitDelay = time.Second

// Plutil converts through the plutil executable.
type Plutil struct {
	binary string
}

// NewPlutil creates a plutil converter for the given executable path.
func NewPlutil(binary string) *Plutil {
	return &Plutil{binary: binary}
}

// Name implements Converter.
func (p *Plutil) Name() string {
	return "plutil"
}

// Binary returns the executable path.
func (p *Plutil) Binary() string {
	return p.binary
}

// Convert runs plutil -convert xml1 -o - path and waits for it to exit.
// A non-zero exit is reported through Conversion.ExitCode with a nil
// error; failing to start the process or a cancelled ctx is an error.
func (p *Plutil) Convert(ctx context.Context, path string) (*domain.Conversion, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.binary, "-convert", "xml1", "-o", "-", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	conv := &domain.Conversion{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return conv, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return conv, fmt.Errorf("converter: %s interrupted: %w", p.binary, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		conv.ExitCode = exitErr.ExitCode()
		return conv, nil
	}

	return conv, fmt.Errorf("converter: run %s: %w", p.binary, err)
}
