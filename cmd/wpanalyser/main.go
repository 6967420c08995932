package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/racwn/wp-file-analyser/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "wpanalyser",
		Short: "Find modified, missing or extra files in a WordPress directory",
		Long: `wpanalyser audits a WordPress installation against a known-clean
reference copy and reports every modified, extra or missing file, plus
PHP files found in the uploads directory. The reference is either a second
local directory or a pristine copy downloaded for the detected version.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewAnalyseCommand())
	rootCmd.AddCommand(cli.NewInventoryCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())

	return rootCmd.Execute()
}
