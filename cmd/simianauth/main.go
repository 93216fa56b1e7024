// Package main provides the entry point for simianauth.
//
// simianauth obtains and releases Simian management session tokens.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yndnr/simianauth-go/internal/cli/command"
	"github.com/yndnr/simianauth-go/internal/infra/shutdown"
)

func main() {
	app := command.App()

	h := shutdown.NewHandler()
	ctx, stop := h.Context(context.Background())
	err := app.RunContext(ctx, os.Args)
	stop()

	if sig := h.Signal(); sig != nil {
		fmt.Fprintf(os.Stderr, "interrupted: %v\n", sig)
		os.Exit(shutdown.ExitCode(sig))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
