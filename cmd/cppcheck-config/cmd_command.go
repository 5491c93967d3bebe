package main

import (
	"fmt"

	"github.com/noperator/run-cppcheck/pkg/command"
	"github.com/spf13/cobra"
)

var commandCmd = &cobra.Command{
	Use:   "command [--config=<path>] [options] <file>",
	Short: "Print the cppcheck command run-cppcheck would execute",
	Long: `Resolve settings for <file> exactly as run-cppcheck does and print the
resulting shell command instead of running it. Compilation database warnings
are printed to stderr.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolveArgs(args)
		if err != nil {
			return err
		}

		for _, w := range res.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), w)
		}

		fmt.Fprintln(cmd.OutOrStdout(), command.Build(res.Settings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandCmd)
}
