package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler cancels a context when one of its signals arrives.
type Handler struct {
	signals []os.Signal

	mu     sync.Mutex
	caught os.Signal
}

// NewHandler creates a handler for the given signals.
// With no arguments it listens for SIGINT and SIGTERM.
func NewHandler(signals ...os.Signal) *Handler {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return &Handler{signals: signals}
}

// Context returns a child of parent that is cancelled on the first signal.
// The returned stop function releases the signal registration and must be
// called once the work is done.
func (h *Handler) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, h.signals...)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			h.mu.Lock()
			h.caught = sig
			h.mu.Unlock()
			cancel()
		case <-done:
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			cancel()
		})
	}
	return ctx, stop
}

// Signal returns the signal that cancelled the context, or nil.
func (h *Handler) Signal() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.caught
}

// ExitCode returns the conventional shell exit status for a process
// terminated by sig (128 + signal number).
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
