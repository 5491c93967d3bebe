package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "run-cppcheck [--config=<path>] [options] <file>",
	Short: "Run cppcheck on a single file using project configuration",
	Long: `run-cppcheck: resolve cppcheck settings for one source file and run it.

Settings come from run-cppcheck-config.json, found by searching the parent
directories of <file> unless --config=<path> is given. With the generic
profile (default) every other option is passed through to cppcheck. Set
RUN_CPPCHECK_SCHEMA=named to accept only --enable=, --template= and
--premium=.

Examples:
  run-cppcheck src/main.cpp
  run-cppcheck --config=tools/cppcheck.json --inline-suppr src/main.cpp
  RUN_CPPCHECK_SCHEMA=named run-cppcheck --enable=style src/main.cpp`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runAnalysis,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionString() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return version
	}
	return info.Main.Version
}
