package wpmeta

import (
	"path/filepath"
)

// commonFiles exist in every WordPress installation and identify one
var commonFiles = []string{
	"wp-login.php",
	"wp-blog-header.php",
	"wp-admin/admin-ajax.php",
	"wp-includes/version.php",
}

// IsWordPress reports whether dir looks like a WordPress installation root,
// meaning all the well-known core files are present.
func IsWordPress(dir string) bool {
	for _, name := range commonFiles {
		if !fileExists(filepath.Join(dir, filepath.FromSlash(name))) {
			return false
		}
	}
	return true
}
