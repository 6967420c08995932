package config

import (
	"github.com/racwn/wp-file-analyser/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AnalysisConfig holds classification-related settings
type AnalysisConfig struct {
	// IgnoreZones are installation subtrees where extra files are expected
	// user content and not reported
	IgnoreZones []string `yaml:"ignore_zones"`

	// ExcludePatterns are additional glob patterns, relative to the
	// installation root, whose extra files are suppressed
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// ScriptExtensions are file extensions flagged under wp-content/uploads
	ScriptExtensions []string `yaml:"script_extensions"`
}

// FetchConfig holds download-related settings
type FetchConfig struct {
	TempDir        string `yaml:"temp_dir"`
	CoreBaseURL    string `yaml:"core_base_url"`
	PluginBaseURL  string `yaml:"plugin_base_url"`
	ThemeBaseURL   string `yaml:"theme_base_url"`
	BandwidthLimit int64  `yaml:"bandwidth_limit"` // bytes per second, 0 = unlimited
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	BufferSize int `yaml:"buffer_size"` // file comparison read buffer
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // show download progress bars
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			IgnoreZones: []string{
				"wp-content/themes",
				"wp-content/uploads",
			},
			ExcludePatterns: []string{},
			ScriptExtensions: []string{
				".php", ".phtml", ".php3", ".php4", ".php5", ".phps",
			},
		},
		Fetch: FetchConfig{
			TempDir:        "wpa-temp",
			CoreBaseURL:    "https://wordpress.org/wordpress-",
			PluginBaseURL:  "https://downloads.wordpress.org/plugin/",
			ThemeBaseURL:   "https://downloads.wordpress.org/theme/",
			BandwidthLimit: 0,
		},
		Performance: PerformanceConfig{
			BufferSize: 65536,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Performance.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "performance.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	if c.Fetch.BandwidthLimit < 0 {
		return &models.ValidationError{
			Field:   "fetch.bandwidth_limit",
			Message: "must not be negative",
		}
	}

	if c.Fetch.TempDir == "" {
		return &models.ValidationError{
			Field:   "fetch.temp_dir",
			Message: "must not be empty",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
