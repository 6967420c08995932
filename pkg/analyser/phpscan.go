package analyser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/racwn/wp-file-analyser/pkg/models"
)

// DefaultScriptExtensions are file extensions the PHP processor may execute
var DefaultScriptExtensions = []string{
	".php", ".phtml", ".php3", ".php4", ".php5", ".phps",
}

// ScanForExtensions walks dir and collects files whose name ends with one of
// the given extensions. A missing directory yields an empty set: an
// installation without an uploads area simply has nothing to flag.
func ScanForExtensions(dir string, exts []string) (models.PathSet, error) {
	found := models.NewPathSet()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return found, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(d.Name(), ext) {
				found.Add(path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return found, nil
}
