package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/noperator/run-cppcheck/pkg/config"
	"github.com/spf13/cobra"
)

var schemaName string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of run-cppcheck-config.json",
	Long: `Print the JSON Schema describing run-cppcheck-config.json for the selected
profile. Editors can use it to validate and complete config files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.ParseSchema(schemaName)
		if err != nil {
			return err
		}

		output, err := json.MarshalIndent(configSchema(schema), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

func configSchema(schema config.Schema) *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(schema.Document())
	s.Title = config.DefaultConfigName
	s.Description = fmt.Sprintf("run-cppcheck configuration (%s profile)", schema)
	return s
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaName, "schema", "s", "generic", "Config profile: generic|named")

	rootCmd.AddCommand(schemaCmd)
}
