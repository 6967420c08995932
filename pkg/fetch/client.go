// Package fetch materializes reference copies of WordPress core, plugin and
// theme packages by downloading and unpacking release archives.
package fetch

import (
	"net/http"
	"os"
	"time"

	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/ratelimit"
)

const (
	// DefaultCoreBaseURL prefixes core archives; append "<version>.zip"
	DefaultCoreBaseURL = "https://wordpress.org/wordpress-"

	// DefaultPluginBaseURL prefixes plugin archives; append "<name>.<version>.zip"
	DefaultPluginBaseURL = "https://downloads.wordpress.org/plugin/"

	// DefaultThemeBaseURL prefixes theme archives; append "<name>.<version>.zip"
	DefaultThemeBaseURL = "https://downloads.wordpress.org/theme/"

	// DefaultTempDir holds downloaded archives and extracted reference trees
	DefaultTempDir = "wpa-temp"
)

// Options configures a fetch client
type Options struct {
	// TempDir is where archives are downloaded and extracted
	TempDir string

	// CoreBaseURL, PluginBaseURL and ThemeBaseURL override the archive hosts,
	// mainly for mirrors and tests
	CoreBaseURL   string
	PluginBaseURL string
	ThemeBaseURL  string

	// BandwidthLimit throttles downloads in bytes per second, 0 = unlimited
	BandwidthLimit int64

	// Progress draws a progress bar while downloading
	Progress bool

	// Timeout bounds each HTTP request, 0 = no timeout
	Timeout time.Duration
}

// Client downloads and unpacks WordPress release archives
type Client struct {
	httpClient *http.Client
	tempDir    string
	coreURL    string
	pluginURL  string
	themeURL   string
	limiter    *ratelimit.Limiter
	progress   bool
	log        logging.Logger
}

// NewClient creates a fetch client
func NewClient(opts Options, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if opts.TempDir == "" {
		opts.TempDir = DefaultTempDir
	}
	if opts.CoreBaseURL == "" {
		opts.CoreBaseURL = DefaultCoreBaseURL
	}
	if opts.PluginBaseURL == "" {
		opts.PluginBaseURL = DefaultPluginBaseURL
	}
	if opts.ThemeBaseURL == "" {
		opts.ThemeBaseURL = DefaultThemeBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		tempDir:    opts.TempDir,
		coreURL:    opts.CoreBaseURL,
		pluginURL:  opts.PluginBaseURL,
		themeURL:   opts.ThemeBaseURL,
		limiter:    ratelimit.NewLimiter(opts.BandwidthLimit),
		progress:   opts.Progress,
		log:        logger,
	}
}

// TempDir returns the client's download directory
func (c *Client) TempDir() string {
	return c.tempDir
}

// Cleanup removes the temporary download directory and everything in it
func (c *Client) Cleanup() error {
	if _, err := os.Stat(c.tempDir); os.IsNotExist(err) {
		return nil
	}
	c.log.Info("removing temporary directory", logging.Fields{"path": c.tempDir})
	return os.RemoveAll(c.tempDir)
}
