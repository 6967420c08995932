package fetch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Unzip extracts every entry of the archive at zipPath into destDir and
// returns the archive's top-level directory name. Entry paths are sanitized
// so no file can land outside destDir.
func Unzip(zipPath, destDir string) (string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	if len(reader.File) == 0 {
		return "", fmt.Errorf("archive is empty: %s", zipPath)
	}

	topDir := strings.SplitN(sanitizeEntryPath(reader.File[0].Name), "/", 2)[0]

	for _, entry := range reader.File {
		name := sanitizeEntryPath(entry.Name)
		if name == "" {
			continue
		}
		target := filepath.Join(destDir, filepath.FromSlash(name))

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := extractFile(entry, target); err != nil {
			return "", err
		}
	}

	return topDir, nil
}

// extractFile writes one archive entry to target
func extractFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to extract %s: %w", entry.Name, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", target, closeErr)
	}
	return nil
}

// sanitizeEntryPath normalizes an archive entry path to a clean, relative,
// slash-separated form with '.' and '..' segments removed
func sanitizeEntryPath(p string) string {
	s := filepath.ToSlash(p)
	if len(s) > 1 && s[1] == ':' {
		s = s[2:]
	}
	s = strings.TrimLeft(s, "/")

	parts := strings.Split(s, "/")
	stack := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if n := len(stack); n > 0 {
				stack = stack[:n-1]
			}
		default:
			stack = append(stack, part)
		}
	}
	return strings.Join(stack, "/")
}
