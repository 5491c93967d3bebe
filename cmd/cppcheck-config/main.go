package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cppcheck-config",
	Short: "Inspect and create run-cppcheck configuration",
	Long: `cppcheck-config: tooling for run-cppcheck-config.json.

Resolve settings exactly as run-cppcheck does without running the analyzer,
write a starter config file, or print the JSON Schema of the config format.`,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
