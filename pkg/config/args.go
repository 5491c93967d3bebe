package config

import (
	"fmt"
	"strings"
)

// ParseArgs reads process arguments (without the program name) into a new
// Settings value. It performs no file I/O.
func ParseArgs(schema Schema, args []string) (*Settings, error) {
	s := NewSettings(schema)
	haveFilename := false

	for _, arg := range args {
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			s.ConfigPath = value
			continue
		}

		if arg == "--version" {
			s.PrintVersion = true
			continue
		}

		if strings.HasPrefix(arg, "-") {
			if err := s.addOption(arg); err != nil {
				return nil, err
			}
			continue
		}

		if haveFilename {
			return nil, fmt.Errorf("%w: %q and %q", ErrMultipleFilenames, s.Filename, arg)
		}
		s.Filename = arg
		haveFilename = true
	}

	if s.Filename == "" && !s.PrintVersion {
		return nil, ErrMissingFilename
	}

	return s, nil
}

func (s *Settings) addOption(arg string) error {
	if s.Schema != SchemaNamed {
		s.Args = append(s.Args, arg)
		return nil
	}

	if value, ok := strings.CutPrefix(arg, "--enable="); ok {
		s.Enable = value
		s.markArgs(fromArgsEnable)
		return nil
	}
	if value, ok := strings.CutPrefix(arg, "--template="); ok {
		s.Template = value
		s.markArgs(fromArgsTemplate)
		return nil
	}
	if value, ok := strings.CutPrefix(arg, "--premium="); ok {
		s.Premium = value
		s.markArgs(fromArgsPremium)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidOption, arg)
}
