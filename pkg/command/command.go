// Package command renders resolved settings into the shell command string
// that runs the analyzer.
package command

import (
	"runtime"
	"strings"

	"github.com/noperator/run-cppcheck/pkg/config"
)

// Builder renders commands for a target platform.
type Builder struct {
	GOOS string
}

func NewBuilder() *Builder {
	return &Builder{GOOS: runtime.GOOS}
}

// Build renders s for the current platform.
func Build(s *config.Settings) string {
	return NewBuilder().Build(s)
}

// Build renders s as a single shell command. Standard error is redirected
// into standard output so captured output includes diagnostics.
func (b *Builder) Build(s *config.Settings) string {
	var sb strings.Builder

	if s.Schema == config.SchemaNamed {
		writeNamed(&sb, s)
	} else {
		writeGeneric(&sb, s)
	}
	sb.WriteString(" 2>&1")

	cmd := sb.String()
	if b.GOOS == "windows" {
		// cmd.exe strips the outer pair of quotes from /C arguments.
		cmd = `"` + cmd + `"`
	}
	return cmd
}

// writeGeneric quotes every token.
func writeGeneric(sb *strings.Builder, s *config.Settings) {
	sb.WriteString(Quote(s.Cppcheck))

	for _, arg := range s.ExtraArgs() {
		sb.WriteByte(' ')
		sb.WriteString(Quote(arg))
	}

	if s.ProjectFile != "" {
		sb.WriteByte(' ')
		sb.WriteString(Quote("--project=" + s.ProjectFile))
		sb.WriteByte(' ')
		sb.WriteString(Quote("--file-filter=" + s.Filename))
	} else {
		sb.WriteByte(' ')
		sb.WriteString(Quote(s.Filename))
	}
}

// writeNamed emits flag values bare; only the file filter is quoted, and
// only when it contains a space.
func writeNamed(sb *strings.Builder, s *config.Settings) {
	sb.WriteString(s.Cppcheck)

	for _, flag := range []struct{ name, value string }{
		{"--enable=", s.Enable},
		{"--template=", s.Template},
		{"--premium=", s.Premium},
	} {
		if flag.value == "" {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(flag.name)
		sb.WriteString(flag.value)
	}

	if s.ProjectFile != "" {
		sb.WriteString(" --project=")
		sb.WriteString(s.ProjectFile)
		sb.WriteString(" --file-filter=")
		sb.WriteString(QuoteIfSpace(s.Filename))
	} else {
		sb.WriteByte(' ')
		sb.WriteString(s.Filename)
	}
}

// Quote wraps arg in double quotes, escaping embedded double quotes with a
// backslash.
func Quote(arg string) string {
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// QuoteIfSpace wraps arg in double quotes when it contains a space and
// returns it unchanged otherwise.
func QuoteIfSpace(arg string) string {
	if strings.Contains(arg, " ") {
		return `"` + arg + `"`
	}
	return arg
}
