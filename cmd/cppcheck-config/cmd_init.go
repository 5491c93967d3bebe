package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noperator/run-cppcheck/pkg/config"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var (
	initSchema   string
	initCppcheck string
	initProject  string
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a starter run-cppcheck-config.json",
	Long: `Write a starter run-cppcheck-config.json into [directory] (default: the
current directory). The file is validated with the same loader run-cppcheck
uses. An existing file is left untouched unless --force is given.

Examples:
  cppcheck-config init
  cppcheck-config init --project build/compile_commands.json src
  cppcheck-config init --schema named --cppcheck cppcheck-premium`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		schema, err := config.ParseSchema(initSchema)
		if err != nil {
			return err
		}

		doc, err := starterConfig(schema, initCppcheck, initProject)
		if err != nil {
			return err
		}

		// The starter must load cleanly with the selected schema.
		if err := config.Load(config.NewSettings(schema), doc); err != nil {
			return fmt.Errorf("generated config is invalid: %w", err)
		}

		path := filepath.Join(dir, config.DefaultConfigName)
		flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
		if initForce {
			flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		}

		f, err := os.OpenFile(path, flags, 0o644)
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if _, err := f.Write(doc); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return f.Close()
	},
}

// starterConfig builds a formatted config document for schema.
func starterConfig(schema config.Schema, cppcheck, project string) ([]byte, error) {
	type entry struct {
		key   string
		value any
	}

	entries := []entry{{"cppcheck", cppcheck}}
	if project != "" {
		entries = append(entries, entry{"project_file", project})
	}
	if schema == config.SchemaNamed {
		entries = append(entries, entry{"enable", "warning,style,performance"})
	} else {
		entries = append(entries,
			entry{"enable_logging", true},
			entry{"extra_args", []string{"--enable=warning,style,performance", "--inline-suppr"}})
	}

	doc := []byte("{}")
	for _, e := range entries {
		var err error
		if doc, err = sjson.SetBytes(doc, e.key, e.value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", e.key, err)
		}
	}

	return pretty.Pretty(doc), nil
}

func init() {
	initCmd.Flags().StringVarP(&initSchema, "schema", "s", "generic", "Config profile: generic|named")
	initCmd.Flags().StringVarP(&initCppcheck, "cppcheck", "c", config.DefaultCppcheck, "Path to the cppcheck executable")
	initCmd.Flags().StringVarP(&initProject, "project", "p", "", "Project file or compile_commands.json, relative to the config directory")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}
