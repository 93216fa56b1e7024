// Package shutdown ties process termination signals to a context.
//
// The CLI runs every command under a context that is cancelled on the
// first SIGINT or SIGTERM, so a hung plist converter is killed instead
// of blocking the terminal:
//
//	h := shutdown.NewHandler()
//	ctx, stop := h.Context(context.Background())
//	defer stop()
//	err := app.RunContext(ctx, os.Args)
//	if sig := h.Signal(); sig != nil {
//		os.Exit(shutdown.ExitCode(sig))
//	}
package shutdown
