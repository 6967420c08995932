package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/racwn/wp-file-analyser/internal/platform"
	"github.com/racwn/wp-file-analyser/pkg/config"
	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/models"
	"github.com/racwn/wp-file-analyser/pkg/wpmeta"
)

// loadConfig loads the configuration honoring the --config flag
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newLogger builds the run logger from flags and configuration.
// --quiet wins over --verbose.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if globalFlags.Quiet {
		return logging.NewConsoleLogger(os.Stderr, logging.ErrorLevel), nil
	}
	if globalFlags.Verbose {
		return logging.NewConsoleLogger(os.Stderr, logging.DebugLevel), nil
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewConsoleLogger(os.Stderr, level), nil
}

// validateWordPressPath normalizes path and checks that it holds a
// WordPress installation
func validateWordPressPath(path string) (string, error) {
	if err := platform.ValidatePath(path); err != nil {
		return "", err
	}
	normalized := platform.NormalizePath(path)

	info, err := os.Stat(normalized)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("path does not exist: %s", normalized)
	} else if err != nil {
		return "", fmt.Errorf("failed to access path: %w", err)
	} else if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", normalized)
	}

	if !wpmeta.IsWordPress(normalized) {
		return "", fmt.Errorf("could not find a WordPress installation in %s", normalized)
	}
	return normalized, nil
}

// ensureDistinctPaths rejects comparing a directory with itself
func ensureDistinctPaths(left, right string) error {
	leftAbs, err := filepath.Abs(left)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	rightAbs, err := filepath.Abs(right)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if leftAbs == rightAbs {
		return fmt.Errorf("cannot compare a WordPress directory with itself: %s", leftAbs)
	}
	return nil
}

// newReport creates a report shell for one analysis run
func newReport(wpPath string) *models.Report {
	return &models.Report{
		ID:            uuid.New().String(),
		WordPressPath: wpPath,
		Result:        models.NewClassification(),
		UploadsPHP:    models.NewPathSet(),
		StartTime:     time.Now(),
		Status:        models.StatusFailed,
	}
}
