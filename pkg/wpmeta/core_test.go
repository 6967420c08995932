package wpmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/racwn/wp-file-analyser/pkg/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestCoreVersion(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantVersion string
		wantFound   bool
	}{
		{
			"StandardVersionFile",
			"<?php\n/**\n * WordPress version.\n */\n$wp_version = '6.4.2';\n",
			"6.4.2",
			true,
		},
		{
			"MarkerOnFirstMatchingLine",
			"$wp_version = '5.9';\n$wp_version = '9.9';\n",
			"5.9",
			true,
		},
		{
			"SingleCharacterVersion",
			"$wp_version = '7';\n",
			"7",
			true,
		},
		{
			"NoQuotedValue",
			"$wp_version = ;\n",
			"",
			false,
		},
		{
			"MissingClosingQuote",
			"$wp_version = '6.4.2\n",
			"",
			false,
		},
		{
			"NoMarker",
			"<?php\n$wp_db_version = 55853;\n",
			"",
			false,
		},
	}

	log := logging.NewNullLogger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "version.php")
			writeFile(t, path, tt.content)

			version, found := CoreVersion(log, path)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if version != tt.wantVersion {
				t.Errorf("version = %q, want %q", version, tt.wantVersion)
			}
		})
	}
}

func TestCoreVersionMissingFile(t *testing.T) {
	if _, found := CoreVersion(logging.NewNullLogger(), filepath.Join(t.TempDir(), "version.php")); found {
		t.Error("a missing version file should yield absence, not a value")
	}
}
