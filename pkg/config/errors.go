package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFilename   = errors.New("missing filename")
	ErrMultipleFilenames = errors.New("multiple filenames provided")
	ErrInvalidOption     = errors.New("invalid option")
	ErrConfigNotFound    = errors.New("config file not found")
)

// IOError reports a file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports text that is not valid JSON or whose top-level value has
// the wrong shape.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// KeyError reports a config key that is unknown or holds a value of the wrong
// JSON type. Index is the offending array element, or -1.
type KeyError struct {
	Key     string
	Unknown bool
	Want    string
	Index   int
}

func (e *KeyError) Error() string {
	switch {
	case e.Unknown:
		return fmt.Sprintf("invalid config key '%s'", e.Key)
	case e.Index >= 0:
		return fmt.Sprintf("invalid value type for array element %d in '%s': want %s", e.Index, e.Key, e.Want)
	default:
		return fmt.Sprintf("invalid value type for '%s': want %s", e.Key, e.Want)
	}
}

// EnvironmentError reports a missing environment variable or a directory
// that could not be created.
type EnvironmentError struct {
	Var  string
	Path string
	Err  error
}

func (e *EnvironmentError) Error() string {
	if e.Var != "" {
		return fmt.Sprintf("environment variable %s not set", e.Var)
	}
	return fmt.Sprintf("failed to create '%s': %v", e.Path, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// Warning wraps a non-fatal problem found while resolving settings. It is
// reported to the user but does not prevent the command from running.
type Warning struct {
	Err error
}

func (w *Warning) Error() string { return "warning: " + w.Err.Error() }

func (w *Warning) Unwrap() error { return w.Err }
