package converter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

// writeScript writes an executable fake plutil with the given body.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plutil")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestPlutil_Convert_Success(t *testing.T) {
	skipWithoutShell(t)
	// Echo the arguments on stderr and the input file on stdout.
	bin := writeScript(t, `echo "$@" >&2; cat "$5"`)

	input := filepath.Join(t.TempDir(), "token.plist")
	if err := os.WriteFile(input, []byte("<plist/>"), 0644); err != nil {
		t.Fatal(err)
	}

	conv, err := NewPlutil(bin).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if conv.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", conv.ExitCode)
	}
	if string(conv.Stdout) != "<plist/>" {
		t.Errorf("Stdout = %q", conv.Stdout)
	}

	wantArgs := "-convert xml1 -o - " + input
	if strings.TrimSpace(string(conv.Stderr)) != wantArgs {
		t.Errorf("args = %q, want %q", strings.TrimSpace(string(conv.Stderr)), wantArgs)
	}
}

func TestPlutil_Convert_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)
	bin := writeScript(t, `echo "not a plist" >&2; exit 3`)

	conv, err := NewPlutil(bin).Convert(context.Background(), "/tmp/x.plist")
	if err != nil {
		t.Fatalf("Convert() error = %v, want nil for non-zero exit", err)
	}
	if conv.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", conv.ExitCode)
	}
	if !strings.Contains(string(conv.Stderr), "not a plist") {
		t.Errorf("Stderr = %q", conv.Stderr)
	}
	if conv.OK() {
		t.Error("OK() should be false")
	}
}

func TestPlutil_Convert_MissingBinary(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "missing-plutil")

	if _, err := NewPlutil(bin).Convert(context.Background(), "/tmp/x.plist"); err == nil {
		t.Error("Convert() should fail when the binary does not exist")
	}
}

func TestPlutil_Convert_Timeout(t *testing.T) {
	skipWithoutShell(t)
	bin := writeScript(t, `exec sleep 5`)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewPlutil(bin).Convert(ctx, "/tmp/x.plist")
	if err == nil {
		t.Fatal("Convert() should fail when the context expires")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Convert() took %v, child was not killed", elapsed)
	}
}
