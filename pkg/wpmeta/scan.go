// Package wpmeta extracts version and name metadata from WordPress
// installation files. Third-party packages are inconsistent about where they
// declare their metadata, so every lookup degrades through ordered fallbacks
// and reports absence instead of failing.
package wpmeta

import (
	"bufio"
	"os"
	"strings"

	"github.com/racwn/wp-file-analyser/pkg/logging"
)

// searchFileForString returns the first line of path containing substr.
// The file is closed as soon as a match is found. Open failures are logged
// and surfaced as absence.
func searchFileForString(log logging.Logger, path, substr string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		log.Error("failed to open file for scanning", err, logging.Fields{"path": path})
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, substr) {
			return line, true
		}
	}
	return "", false
}

// searchFileForKey scans path for the first line containing key and returns
// the trimmed remainder of that line. An empty trimmed value counts as not
// found so callers fall through to the next candidate file.
func searchFileForKey(log logging.Logger, path, key string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		log.Error("failed to open metadata file", err, logging.Fields{"path": path})
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		pos := strings.Index(line, key)
		if pos == -1 {
			continue
		}
		value := strings.TrimSpace(line[pos+len(key):])
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// fileExists reports whether path exists and is a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
