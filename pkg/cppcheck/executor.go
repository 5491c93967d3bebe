// Package cppcheck runs rendered analyzer commands through the platform shell.
package cppcheck

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Run executes command through the shell and returns its combined output.
// The output is returned even when the command fails.
func (e *Executor) Run(ctx context.Context, command string) ([]byte, error) {
	cmd := shellCommand(ctx, command)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("analyzer command failed: %w", err)
	}

	return output, nil
}

// Version returns the first line printed by `<bin> --version`.
func (e *Executor) Version(ctx context.Context, bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", bin, err)
	}

	output, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", bin, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	return line, nil
}
