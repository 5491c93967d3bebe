package main

import (
	"os"

	"github.com/noperator/run-cppcheck/pkg/config"
	"github.com/noperator/run-cppcheck/pkg/logging"
)

// resolveArgs parses run-cppcheck style arguments and resolves them the same
// way run-cppcheck does.
func resolveArgs(args []string) (*config.Result, error) {
	schema, err := config.ParseSchema(os.Getenv(config.SchemaEnv))
	if err != nil {
		return nil, err
	}

	settings, err := config.ParseArgs(schema, args)
	if err != nil {
		return nil, err
	}

	resolver := config.NewResolver()
	resolver.Logger = logging.NewLoggerFromEnv()
	return resolver.Resolve(settings)
}
