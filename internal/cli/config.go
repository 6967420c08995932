package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/racwn/wp-file-analyser/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify wpanalyser configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Ignore Zones: %s\n", strings.Join(cfg.Analysis.IgnoreZones, ", "))
			fmt.Printf("Exclude Patterns: %s\n", strings.Join(cfg.Analysis.ExcludePatterns, ", "))
			fmt.Printf("Script Extensions: %s\n", strings.Join(cfg.Analysis.ScriptExtensions, ", "))
			fmt.Printf("Temp Directory: %s\n", cfg.Fetch.TempDir)
			fmt.Printf("Bandwidth Limit: %d\n", cfg.Fetch.BandwidthLimit)
			fmt.Printf("Buffer Size: %d\n", cfg.Performance.BufferSize)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
