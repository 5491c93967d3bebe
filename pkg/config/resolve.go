package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/noperator/run-cppcheck/pkg/compdb"
	"github.com/noperator/run-cppcheck/pkg/pathutil"
)

const logDirName = "run-cppcheck"
const logFileName = "log.txt"

// Resolver completes parsed Settings: it finds and loads the config file,
// makes paths absolute and checks the compilation database. The function
// fields default to the process environment and can be replaced in tests.
type Resolver struct {
	Getenv     func(string) string
	Getwd      func() (string, error)
	GOOS       string
	ConfigName string
	Logger     *slog.Logger
}

// Result is the outcome of a successful resolution.
type Result struct {
	Settings *Settings
	Match    compdb.Match
	// Warnings holds non-fatal problems, each a *Warning.
	Warnings []error
}

func NewResolver() *Resolver {
	return &Resolver{
		Getenv:     os.Getenv,
		Getwd:      os.Getwd,
		GOOS:       runtime.GOOS,
		ConfigName: DefaultConfigName,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Resolve runs the post-parse resolution sequence on s. Any returned error is
// fatal; problems with the compilation database end up in Result.Warnings.
func (r *Resolver) Resolve(s *Settings) (*Result, error) {
	if s.Filename == "" {
		return nil, ErrMissingFilename
	}

	cwd, err := r.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	target := s.Filename
	if !filepath.IsAbs(target) {
		target = filepath.Join(cwd, target)
	}

	if s.ConfigPath == "" && s.Schema == SchemaGeneric {
		found, err := pathutil.FindAncestorFile(target, r.ConfigName)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return nil, fmt.Errorf("failed to find '%s' in any parent directory of analyzed file: %w", r.ConfigName, ErrConfigNotFound)
		}
		s.ConfigPath = found
	}

	if s.ConfigPath != "" {
		if !filepath.IsAbs(s.ConfigPath) {
			s.ConfigPath = filepath.Join(cwd, s.ConfigPath)
		}
		r.Logger.Debug("loading config",
			"component", "config",
			"path", s.ConfigPath,
			"schema", s.Schema.String())
		if err := LoadFile(s, s.ConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load '%s': %w", s.ConfigPath, err)
		}
	}

	if s.ProjectFile != "" && !filepath.IsAbs(s.ProjectFile) {
		s.ProjectFile = filepath.Join(filepath.Dir(s.ConfigPath), s.ProjectFile)
	}

	if !filepath.IsAbs(s.Filename) {
		s.Filename = pathutil.NormalizeLexical(cwd + string(filepath.Separator) + s.Filename)
	}

	if s.Schema == SchemaGeneric && s.LogFile == "" {
		dir, err := DefaultLogDir(r.GOOS, r.Getenv)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return nil, &EnvironmentError{Path: dir, Err: err}
		}
		s.LogFile = filepath.Join(dir, logFileName)
	}

	res := &Result{Settings: s}

	match, err := compdb.Lookup(s.ProjectFile, s.Filename)
	res.Match = match
	switch {
	case err != nil:
		res.Warnings = append(res.Warnings, &Warning{Err: fmt.Errorf("failed to process %s: %w", s.ProjectFile, err)})
	case match.Applicable && !match.Listed:
		res.Warnings = append(res.Warnings, &Warning{Err: fmt.Errorf("%s is not listed in %s", s.Filename, s.ProjectFile)})
	}

	r.Logger.Debug("settings resolved",
		"component", "config",
		"file", s.Filename,
		"project", s.ProjectFile,
		"log_file", s.LogFile,
		"warnings", len(res.Warnings))

	return res, nil
}

// DefaultLogDir returns the directory holding the default log file:
// %LOCALAPPDATA%\run-cppcheck on Windows, and $XDG_STATE_HOME/run-cppcheck
// (falling back to $HOME/.local/state/run-cppcheck) elsewhere.
func DefaultLogDir(goos string, getenv func(string) string) (string, error) {
	var base string
	if goos == "windows" {
		base = getenv("LOCALAPPDATA")
		if base == "" {
			return "", &EnvironmentError{Var: "LOCALAPPDATA"}
		}
	} else if base = getenv("XDG_STATE_HOME"); base == "" {
		home := getenv("HOME")
		if home == "" {
			return "", &EnvironmentError{Var: "HOME"}
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, logDirName), nil
}
