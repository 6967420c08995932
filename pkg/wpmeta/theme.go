package wpmeta

import (
	"path/filepath"

	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/models"
)

// ThemesDir is the installation-relative themes directory
const ThemesDir = "wp-content/themes"

// Themes enumerates the themes installed under wpPath with their detected
// versions, sorted by name. A missing themes directory is fatal.
func Themes(log logging.Logger, wpPath string) ([]models.Artifact, error) {
	return artifacts(log, filepath.Join(wpPath, filepath.FromSlash(ThemesDir)), ThemeDetails)
}

// ThemeDetails extracts name and version metadata from a theme's stylesheet.
// The stylesheet header's "Text Domain:" is the canonical package name used
// by the download archives; the directory name is the fallback.
func ThemeDetails(log logging.Logger, themeDir string) models.Artifact {
	artifact := models.Artifact{Kind: models.KindTheme, Name: filepath.Base(themeDir)}

	stylesheet := filepath.Join(themeDir, "style.css")
	if !fileExists(stylesheet) {
		log.Debug("theme has no stylesheet", logging.Fields{"theme": artifact.Name})
		return artifact
	}

	if name, ok := searchFileForKey(log, stylesheet, "Text Domain:"); ok {
		artifact.Name = name
	}
	if version, ok := searchFileForKey(log, stylesheet, "Version:"); ok {
		artifact.Version = version
		artifact.HasVersion = true
	}
	return artifact
}
