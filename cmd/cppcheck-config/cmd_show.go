package main

import (
	"encoding/json"
	"fmt"

	"github.com/noperator/run-cppcheck/pkg/compdb"
	"github.com/spf13/cobra"
)

type resolvedSettings struct {
	Schema         string       `json:"schema"`
	ConfigPath     string       `json:"config_path,omitempty"`
	Cppcheck       string       `json:"cppcheck"`
	Filename       string       `json:"file"`
	ProjectFile    string       `json:"project_file,omitempty"`
	LogFile        string       `json:"log_file,omitempty"`
	LoggingEnabled bool         `json:"enable_logging"`
	ExtraArgs      []string     `json:"extra_args,omitempty"`
	Enable         string       `json:"enable,omitempty"`
	Template       string       `json:"template,omitempty"`
	Premium        string       `json:"premium,omitempty"`
	CompileDB      compdb.Match `json:"compile_db"`
	Warnings       []string     `json:"warnings,omitempty"`
}

var showCmd = &cobra.Command{
	Use:                "show [--config=<path>] [options] <file>",
	Short:              "Print the resolved settings for a file as JSON",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolveArgs(args)
		if err != nil {
			return err
		}

		s := res.Settings
		view := resolvedSettings{
			Schema:         s.Schema.String(),
			ConfigPath:     s.ConfigPath,
			Cppcheck:       s.Cppcheck,
			Filename:       s.Filename,
			ProjectFile:    s.ProjectFile,
			LogFile:        s.LogFile,
			LoggingEnabled: s.LoggingEnabled,
			ExtraArgs:      s.ExtraArgs(),
			Enable:         s.Enable,
			Template:       s.Template,
			Premium:        s.Premium,
			CompileDB:      res.Match,
		}
		for _, w := range res.Warnings {
			view.Warnings = append(view.Warnings, w.Error())
		}

		output, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
