package analyser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnoreZones are the installation subtrees where extra files are
// expected user content rather than drift
var DefaultIgnoreZones = []string{
	"wp-content/themes",
	"wp-content/uploads",
}

// IgnoreList decides whether an extra file falls under a zone where
// divergence is expected. It is static after construction.
type IgnoreList struct {
	root  string   // absolute installation root
	zones []string // relative subpaths, slash-separated
	globs []string // doublestar patterns matched against root-relative paths
}

// NewIgnoreList creates an ignore list rooted at the installation directory.
// zones are relative subpaths such as "wp-content/themes"; globs are
// additional user-configured patterns such as "wp-content/cache/**".
func NewIgnoreList(root string, zones, globs []string) (*IgnoreList, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	for _, pattern := range globs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	return &IgnoreList{
		root:  absRoot,
		zones: zones,
		globs: globs,
	}, nil
}

// Ignored reports whether the file at path lies inside an ignore zone or
// matches a configured exclude pattern.
//
// Zone matching is two-stage: a cheap substring test admits candidates, then
// a resolved containment check confirms the file really sits under
// root/zone. The containment check is what rejects look-alike siblings such
// as "wp-content/themes-backup".
func (l *IgnoreList) Ignored(path string) bool {
	slashPath := filepath.ToSlash(path)
	for _, zone := range l.zones {
		if !strings.Contains(slashPath, zone) {
			continue
		}
		if isSubPath(path, filepath.Join(l.root, filepath.FromSlash(zone))) {
			return true
		}
	}

	if len(l.globs) > 0 {
		if rel, ok := l.relative(path); ok {
			for _, pattern := range l.globs {
				if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
					return true
				}
			}
		}
	}

	return false
}

// relative resolves path against the installation root
func (l *IgnoreList) relative(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(l.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// isSubPath reports whether child resolves to a path strictly below parent.
// The separator boundary prevents "themes2" matching a "themes" parent.
func isSubPath(child, parent string) bool {
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	return strings.HasPrefix(absChild, absParent+string(filepath.Separator))
}
