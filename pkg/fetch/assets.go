package fetch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/wpmeta"
)

// DownloadCore fetches the WordPress core archive for version and extracts
// it into the temp directory, returning the extracted installation root.
func (c *Client) DownloadCore(ctx context.Context, version string) (string, error) {
	zipName := fmt.Sprintf("wordpress_%s.zip", version)
	fileURL := fmt.Sprintf("%s%s.zip", c.coreURL, version)

	zipPath, err := c.DownloadFile(ctx, fileURL, c.tempDir, zipName)
	if err != nil {
		return "", err
	}

	topDir, err := Unzip(zipPath, c.tempDir)
	if err != nil {
		return "", err
	}

	extracted := filepath.Join(c.tempDir, topDir)
	c.log.Info("extracted WordPress core", logging.Fields{"version": version, "path": extracted})
	return extracted, nil
}

// FetchPlugin downloads the named plugin version and extracts it into the
// plugins directory of wpDir, returning the extracted directory path.
func (c *Client) FetchPlugin(ctx context.Context, name, version, wpDir string) (string, error) {
	destDir := filepath.Join(wpDir, filepath.FromSlash(wpmeta.PluginsDir))
	return c.fetchAsset(ctx, c.pluginURL, name, version, destDir)
}

// FetchTheme downloads the named theme version and extracts it into the
// themes directory of wpDir, returning the extracted directory path.
func (c *Client) FetchTheme(ctx context.Context, name, version, wpDir string) (string, error) {
	destDir := filepath.Join(wpDir, filepath.FromSlash(wpmeta.ThemesDir))
	return c.fetchAsset(ctx, c.themeURL, name, version, destDir)
}

// fetchAsset downloads "<name>.<version>.zip" from baseURL and extracts it
// into destDir
func (c *Client) fetchAsset(ctx context.Context, baseURL, name, version, destDir string) (string, error) {
	zipName := fmt.Sprintf("%s.%s.zip", name, version)
	fileURL := baseURL + zipName

	zipPath, err := c.DownloadFile(ctx, fileURL, c.tempDir, zipName)
	if err != nil {
		return "", err
	}

	topDir, err := Unzip(zipPath, destDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(destDir, topDir), nil
}
