package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"

	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/ratelimit"
)

// DownloadFile fetches fileURL into destDir under name and returns the
// downloaded file's path.
//
// A destination file that already exists is reused and counted as success, so
// interrupted runs can resume without refetching archives.
func (c *Client) DownloadFile(ctx context.Context, fileURL, destDir, name string) (string, error) {
	destPath := filepath.Join(destDir, name)
	if info, err := os.Stat(destPath); err == nil && !info.IsDir() {
		c.log.Info("file already exists, reusing it", logging.Fields{"path": destPath})
		return destPath, nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("download failed with status %d: %s", resp.StatusCode, fileURL)
	}

	var reader io.Reader = ratelimit.NewReader(ctx, resp.Body, c.limiter)

	var bar *pb.ProgressBar
	if c.progress && resp.ContentLength > 0 {
		bar = pb.Full.Start64(resp.ContentLength)
		bar.Set(pb.Bytes, true)
		reader = bar.NewProxyReader(reader)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	_, copyErr := io.Copy(file, reader)
	closeErr := file.Close()
	if bar != nil {
		bar.Finish()
	}

	if copyErr != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to write %s: %w", destPath, copyErr)
	}
	if closeErr != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to close %s: %w", destPath, closeErr)
	}

	c.log.Info("downloaded file", logging.Fields{"url": fileURL, "path": destPath})
	return destPath, nil
}
