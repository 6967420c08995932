package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/racwn/wp-file-analyser/pkg/models"
)

func sampleReport() *models.Report {
	report := &models.Report{
		ID:            "run-1",
		WordPressPath: "/srv/www",
		ReferencePath: "/tmp/wpa-temp/wordpress",
		CoreVersion:   "6.4.2",
		Result:        models.NewClassification(),
		UploadsPHP:    models.NewPathSet(),
	}
	report.Result.Diff.Add("x")
	report.Result.Missing.Add("z")
	report.Result.Missing.Add("y")
	report.Finalize()
	return report
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"human", false},
		{"json", false},
		{"xml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := New(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) should fail", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.format, err)
			}
			if formatter.Name() != tt.format {
				t.Errorf("Name() = %s, want %s", formatter.Name(), tt.format)
			}
		})
	}
}

func TestHumanFormatterSectionsAndSorting(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHumanFormatter().Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "DIFF: (1)\n" +
		"x\n" +
		"EXTRA: (0)\n" +
		"MISSING: (2)\n" +
		"y\n" +
		"z\n" +
		"PHP FILES IN 'WP-CONTENT/UPLOADS': (0)\n"
	if buf.String() != expected {
		t.Errorf("Render() output:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestHumanFormatterIsDeterministic(t *testing.T) {
	report := sampleReport()

	var first, second bytes.Buffer
	if err := NewHumanFormatter().Render(&first, report); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := NewHumanFormatter().Render(&second, report); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("rendering the same report twice should produce identical output")
	}
}

func TestJSONFormatter(t *testing.T) {
	report := sampleReport()
	report.Plugins = []models.Artifact{
		{Kind: models.KindPlugin, Name: "photo-gallery", Version: "1.4.3", HasVersion: true},
		{Kind: models.KindPlugin, Name: "mystery"},
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter().Render(&buf, report); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded struct {
		ID      string   `json:"id"`
		Diff    []string `json:"diff"`
		Missing []string `json:"missing"`
		Status  string   `json:"status"`
		Plugins []struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"plugins"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.ID != "run-1" {
		t.Errorf("id = %s, want run-1", decoded.ID)
	}
	if len(decoded.Missing) != 2 || decoded.Missing[0] != "y" || decoded.Missing[1] != "z" {
		t.Errorf("missing = %v, want sorted [y z]", decoded.Missing)
	}
	if decoded.Status != "drift" {
		t.Errorf("status = %s, want drift", decoded.Status)
	}
	if decoded.Plugins[1].Version != "" {
		t.Error("versionless plugin must omit the version field")
	}
	if !strings.Contains(buf.String(), "\"core_version\": \"6.4.2\"") {
		t.Error("core version missing from JSON output")
	}
}
