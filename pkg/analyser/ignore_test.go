package analyser

import (
	"path/filepath"
	"testing"
)

func TestIgnoreListZones(t *testing.T) {
	root := t.TempDir()

	ignore, err := NewIgnoreList(root, DefaultIgnoreZones, nil)
	if err != nil {
		t.Fatalf("NewIgnoreList() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		ignored bool
	}{
		{
			"FileInThemes",
			filepath.Join(root, "wp-content", "themes", "custom", "style.css"),
			true,
		},
		{
			"FileInUploads",
			filepath.Join(root, "wp-content", "uploads", "2024", "photo.jpg"),
			true,
		},
		{
			"PartialNameSibling",
			filepath.Join(root, "wp-content", "themes-backup", "x.php"),
			false,
		},
		{
			"NumberedSibling",
			filepath.Join(root, "wp-content", "themes2", "x.php"),
			false,
		},
		{
			"ZoneDirectoryItself",
			filepath.Join(root, "wp-content", "themes"),
			false,
		},
		{
			"ZoneNameOutsideRoot",
			filepath.Join(root, "backup", "wp-content", "themes", "x.php"),
			false,
		},
		{
			"CoreFile",
			filepath.Join(root, "wp-login.php"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ignore.Ignored(tt.path); got != tt.ignored {
				t.Errorf("Ignored(%s) = %v, want %v", tt.path, got, tt.ignored)
			}
		})
	}
}

func TestIgnoreListGlobs(t *testing.T) {
	root := t.TempDir()

	ignore, err := NewIgnoreList(root, nil, []string{"wp-content/cache/**", "*.bak"})
	if err != nil {
		t.Fatalf("NewIgnoreList() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		ignored bool
	}{
		{"NestedCacheFile", filepath.Join(root, "wp-content", "cache", "page", "home.html"), true},
		{"TopLevelBackup", filepath.Join(root, "settings.bak"), true},
		{"UnmatchedFile", filepath.Join(root, "wp-settings.php"), false},
		{"OutsideRoot", filepath.Join(root, "..", "elsewhere", "file.bak"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ignore.Ignored(tt.path); got != tt.ignored {
				t.Errorf("Ignored(%s) = %v, want %v", tt.path, got, tt.ignored)
			}
		})
	}
}

func TestNewIgnoreListRejectsBadPattern(t *testing.T) {
	if _, err := NewIgnoreList(t.TempDir(), nil, []string{"["}); err == nil {
		t.Error("NewIgnoreList() should reject an invalid glob pattern")
	}
}
