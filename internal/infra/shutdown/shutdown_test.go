package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestNewHandler_DefaultSignals(t *testing.T) {
	h := NewHandler()
	if len(h.signals) != 2 {
		t.Fatalf("signals = %v, want SIGINT and SIGTERM", h.signals)
	}
	if h.signals[0] != syscall.SIGINT || h.signals[1] != syscall.SIGTERM {
		t.Errorf("signals = %v", h.signals)
	}
}

func TestHandler_ContextCancelledOnSignal(t *testing.T) {
	h := NewHandler(syscall.SIGUSR1)
	ctx, stop := h.Context(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled after signal")
	}

	if got := h.Signal(); got != syscall.SIGUSR1 {
		t.Errorf("Signal() = %v, want SIGUSR1", got)
	}
}

func TestHandler_StopCancelsWithoutSignal(t *testing.T) {
	h := NewHandler(syscall.SIGUSR2)
	ctx, stop := h.Context(context.Background())

	stop()
	stop()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("context should be cancelled after stop")
	}
	if got := h.Signal(); got != nil {
		t.Errorf("Signal() = %v, want nil", got)
	}
}

func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(syscall.SIGUSR2)
	ctx, stop := h.Context(parent)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("child context not cancelled with parent")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		sig  syscall.Signal
		want int
	}{
		{"SIGINT", syscall.SIGINT, 130},
		{"SIGTERM", syscall.SIGTERM, 143},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.sig); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.sig, got, tt.want)
			}
		})
	}
}
