package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/noperator/run-cppcheck/pkg/command"
	"github.com/noperator/run-cppcheck/pkg/config"
	"github.com/noperator/run-cppcheck/pkg/cppcheck"
	"github.com/noperator/run-cppcheck/pkg/logging"
	"github.com/spf13/cobra"
)

func runAnalysis(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return cmd.Help()
		}
	}

	logger := logging.NewLoggerFromEnv()

	schema, err := config.ParseSchema(os.Getenv(config.SchemaEnv))
	if err != nil {
		return err
	}

	settings, err := config.ParseArgs(schema, args)
	if err != nil {
		return err
	}

	executor := cppcheck.NewExecutor()

	if settings.PrintVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "run-cppcheck %s\n", versionString())
		if v, err := executor.Version(cmd.Context(), settings.Cppcheck); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	}

	resolver := config.NewResolver()
	resolver.Logger = logger
	res, err := resolver.Resolve(settings)
	if err != nil {
		return err
	}

	logWarnings(logger, settings, res.Warnings)

	runID := uuid.NewString()
	cmdline := command.Build(settings)

	logger.Debug("running analyzer",
		"component", "cppcheck",
		"run_id", runID,
		"command", cmdline)

	output, runErr := executor.Run(cmd.Context(), cmdline)
	if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("failed to write analyzer output: %w", err)
	}

	if settings.LoggingEnabled && settings.LogFile != "" {
		fileLogger, closer := logging.NewFileLogger(settings.LogFile)
		defer closer.Close()

		attrs := []any{
			"run_id", runID,
			"file", settings.Filename,
			"config", settings.ConfigPath,
			"command", cmdline,
			"output", string(output),
		}
		for _, w := range res.Warnings {
			attrs = append(attrs, "warning", w.Error())
		}
		if runErr != nil {
			fileLogger.Error("analysis failed", append(attrs, "error", runErr)...)
		} else {
			fileLogger.Info("analysis finished", attrs...)
		}
	}

	return runErr
}

func logWarnings(logger *slog.Logger, settings *config.Settings, warnings []error) {
	for _, w := range warnings {
		logger.Warn("compilation database check",
			"component", "compdb",
			"project", settings.ProjectFile,
			"warning", w.Error())
	}
}
