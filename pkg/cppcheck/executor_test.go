//go:build !windows

package cppcheck

import (
	"context"
	"strings"
	"testing"
)

func TestRunCapturesStderr(t *testing.T) {
	e := NewExecutor()

	output, err := e.Run(context.Background(), `echo out; echo "err" >&2`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := string(output); !strings.Contains(got, "out") || !strings.Contains(got, "err") {
		t.Errorf("Run() output = %q, want stdout and stderr", got)
	}
}

func TestRunFailureKeepsOutput(t *testing.T) {
	e := NewExecutor()

	output, err := e.Run(context.Background(), `echo diagnostics; exit 3`)
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if !strings.Contains(string(output), "diagnostics") {
		t.Errorf("Run() output = %q, want diagnostics", output)
	}
}

func TestRunQuotedArguments(t *testing.T) {
	e := NewExecutor()

	output, err := e.Run(context.Background(), `printf '%s|' "a b" "c\"d" 2>&1`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := string(output), `a b|c"d|`; got != want {
		t.Errorf("Run() output = %q, want %q", got, want)
	}
}

func TestVersionMissingBinary(t *testing.T) {
	if _, err := NewExecutor().Version(context.Background(), "no-such-analyzer-5e2a"); err == nil {
		t.Error("Version() error = nil, want error")
	}
}
