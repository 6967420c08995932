package wpmeta

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/models"
)

// PluginsDir is the installation-relative plugins directory
const PluginsDir = "wp-content/plugins"

// Plugins enumerates the plugins installed under wpPath with their detected
// versions, sorted by name. A missing plugins directory is fatal; a plugin
// whose version cannot be discovered is logged and returned without one.
func Plugins(log logging.Logger, wpPath string) ([]models.Artifact, error) {
	return artifacts(log, filepath.Join(wpPath, filepath.FromSlash(PluginsDir)), PluginDetails)
}

// PluginDetails extracts name and version metadata for one plugin directory.
//
// Candidate metadata files are tried in priority order: the readme's
// "Stable tag:" first, then a "Version:" header in a source file named after
// the directory, then the underscore-normalized variant of that name. The
// first candidate yielding a non-empty value wins. The name is always the
// directory's own name.
func PluginDetails(log logging.Logger, pluginDir string) models.Artifact {
	name := filepath.Base(pluginDir)
	artifact := models.Artifact{Kind: models.KindPlugin, Name: name}

	candidates := []struct {
		file string
		key  string
	}{
		{"readme.txt", "Stable tag:"},
		{name + ".php", "Version:"},
		{strings.ReplaceAll(name, "-", "_") + ".php", "Version:"},
	}

	for _, candidate := range candidates {
		path := filepath.Join(pluginDir, candidate.file)
		if !fileExists(path) {
			continue
		}
		if version, ok := searchFileForKey(log, path, candidate.key); ok {
			artifact.Version = version
			artifact.HasVersion = true
			return artifact
		}
	}

	log.Debug("no version metadata found for plugin", logging.Fields{"plugin": name})
	return artifact
}

// artifacts enumerates the first-level artifact directories under root and
// extracts each one's metadata with details
func artifacts(log logging.Logger, root string, details func(logging.Logger, string) models.Artifact) ([]models.Artifact, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifact directory %s: %w", root, err)
	}

	var found []models.Artifact
	for _, entry := range entries {
		// the stock index.php placeholder is not an artifact
		if !entry.IsDir() {
			continue
		}
		artifact := details(log, filepath.Join(root, entry.Name()))
		if !artifact.HasVersion {
			log.Warn("could not detect artifact version", logging.Fields{
				"kind": string(artifact.Kind),
				"name": artifact.Name,
			})
		}
		found = append(found, artifact)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}
