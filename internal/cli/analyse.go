package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/racwn/wp-file-analyser/pkg/analyser"
	"github.com/racwn/wp-file-analyser/pkg/config"
	"github.com/racwn/wp-file-analyser/pkg/dircmp"
	"github.com/racwn/wp-file-analyser/pkg/fetch"
	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/models"
	"github.com/racwn/wp-file-analyser/pkg/output"
	"github.com/racwn/wp-file-analyser/pkg/wpmeta"
)

// AnalyseFlags holds analyse command flags
type AnalyseFlags struct {
	WithVersion string
	Output      string
	TidyUp      bool
}

var analyseFlags AnalyseFlags

// NewAnalyseCommand creates the analyse command
func NewAnalyseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyse <wordpress-path> [reference-path]",
		Short: "Find modified, missing or extra files in a WordPress directory",
		Long: `Compare a WordPress installation against a known-clean reference copy and
report every modified, extra or missing file, plus PHP files hiding in the
uploads directory.

Without a second path, a pristine copy of the detected (or given) WordPress
version is downloaded along with the installed plugins and themes, and the
comparison runs against that.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runAnalyse,
	}

	cmd.Flags().StringVarP(&analyseFlags.WithVersion, "with-version", "w", "",
		"compare against a specific WordPress version instead of auto-detecting")
	cmd.Flags().StringVarP(&analyseFlags.Output, "output", "o", "",
		"output format: human, json (default from config)")
	cmd.Flags().BoolVarP(&analyseFlags.TidyUp, "tidy-up", "t", false,
		"remove the downloaded WordPress copy and archives after analysis")

	return cmd
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if analyseFlags.Output != "" {
		format = analyseFlags.Output
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	wpPath, err := validateWordPressPath(args[0])
	if err != nil {
		return err
	}

	report := newReport(wpPath)

	client := fetch.NewClient(fetch.Options{
		TempDir:        cfg.Fetch.TempDir,
		CoreBaseURL:    cfg.Fetch.CoreBaseURL,
		PluginBaseURL:  cfg.Fetch.PluginBaseURL,
		ThemeBaseURL:   cfg.Fetch.ThemeBaseURL,
		BandwidthLimit: cfg.Fetch.BandwidthLimit,
		Progress:       cfg.Output.Progress && globalFlags.Verbose,
	}, log)

	if len(args) == 2 {
		report.ReferencePath, err = validateWordPressPath(args[1])
		if err != nil {
			return err
		}
		if err := ensureDistinctPaths(wpPath, report.ReferencePath); err != nil {
			return err
		}
	} else {
		report.ReferencePath, err = buildReference(ctx, cfg, log, client, report, wpPath)
		if err != nil {
			return err
		}
	}

	log.Info("starting analysis", logging.Fields{
		"wordpress": wpPath,
		"reference": report.ReferencePath,
	})

	ignore, err := analyser.NewIgnoreList(wpPath, cfg.Analysis.IgnoreZones, cfg.Analysis.ExcludePatterns)
	if err != nil {
		return err
	}

	comparer := dircmp.New(cfg.Performance.BufferSize)
	tree, err := comparer.Compare(wpPath, report.ReferencePath)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	report.Result = analyser.New(ignore, log).Classify(tree)

	uploadsDir := filepath.Join(wpPath, "wp-content", "uploads")
	report.UploadsPHP, err = analyser.ScanForExtensions(uploadsDir, cfg.Analysis.ScriptExtensions)
	if err != nil {
		return err
	}

	report.Finalize()

	if err := formatter.Render(os.Stdout, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if analyseFlags.TidyUp {
		if err := client.Cleanup(); err != nil {
			log.Error("failed to remove temporary directory", err, nil)
		}
	}

	os.Exit(report.Status.ExitCode())
	return nil
}

// buildReference downloads a pristine WordPress copy matching the
// installation, then fetches every detected plugin and theme into it.
// Artifact download failures are logged and skipped; the core download is
// fatal.
func buildReference(ctx context.Context, cfg *config.Config, log logging.Logger, client *fetch.Client, report *models.Report, wpPath string) (string, error) {
	version := analyseFlags.WithVersion
	if version == "" {
		versionFile := filepath.Join(wpPath, filepath.FromSlash(wpmeta.VersionFilePath))
		detected, ok := wpmeta.CoreVersion(log, versionFile)
		if !ok {
			return "", fmt.Errorf("could not detect WordPress version in %s", versionFile)
		}
		version = detected
	}
	report.CoreVersion = version

	log.Info("downloading a new copy of WordPress", logging.Fields{"version": version})
	refPath, err := client.DownloadCore(ctx, version)
	if err != nil {
		return "", fmt.Errorf("failed to obtain reference copy: %w", err)
	}

	report.Plugins, err = wpmeta.Plugins(log, wpPath)
	if err != nil {
		return "", err
	}
	for _, plugin := range report.Plugins {
		if !plugin.HasVersion {
			continue
		}
		if _, err := client.FetchPlugin(ctx, plugin.Name, plugin.Version, refPath); err != nil {
			log.Error("could not download plugin", err, logging.Fields{"plugin": plugin.String()})
		}
	}

	report.Themes, err = wpmeta.Themes(log, wpPath)
	if err != nil {
		return "", err
	}
	for _, theme := range report.Themes {
		if !theme.HasVersion {
			continue
		}
		if _, err := client.FetchTheme(ctx, theme.Name, theme.Version, refPath); err != nil {
			log.Error("could not download theme", err, logging.Fields{"theme": theme.String()})
		}
	}

	return refPath, nil
}
