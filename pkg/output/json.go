package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/racwn/wp-file-analyser/pkg/models"
)

// JSONFormatter renders the report as JSON for automation and scripting
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

// jsonReport is the serialized report layout
type jsonReport struct {
	ID            string         `json:"id"`
	WordPressPath string         `json:"wordpress_path"`
	ReferencePath string         `json:"reference_path"`
	CoreVersion   string         `json:"core_version,omitempty"`
	Plugins       []jsonArtifact `json:"plugins,omitempty"`
	Themes        []jsonArtifact `json:"themes,omitempty"`
	Diff          []string       `json:"diff"`
	Extra         []string       `json:"extra"`
	Missing       []string       `json:"missing"`
	UploadsPHP    []string       `json:"uploads_php"`
	StartTime     time.Time      `json:"start_time"`
	DurationMs    int64          `json:"duration_ms"`
	Status        string         `json:"status"`
}

// jsonArtifact is the serialized artifact layout
type jsonArtifact struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Render writes the report as indented JSON with all path lists sorted
func (f *JSONFormatter) Render(w io.Writer, report *models.Report) error {
	out := jsonReport{
		ID:            report.ID,
		WordPressPath: report.WordPressPath,
		ReferencePath: report.ReferencePath,
		CoreVersion:   report.CoreVersion,
		Plugins:       toJSONArtifacts(report.Plugins),
		Themes:        toJSONArtifacts(report.Themes),
		Diff:          report.Result.Diff.Sorted(),
		Extra:         report.Result.Extra.Sorted(),
		Missing:       report.Result.Missing.Sorted(),
		UploadsPHP:    report.UploadsPHP.Sorted(),
		StartTime:     report.StartTime,
		DurationMs:    report.Duration.Milliseconds(),
		Status:        string(report.Status),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func toJSONArtifacts(artifacts []models.Artifact) []jsonArtifact {
	out := make([]jsonArtifact, 0, len(artifacts))
	for _, a := range artifacts {
		item := jsonArtifact{Kind: string(a.Kind), Name: a.Name}
		if a.HasVersion {
			item.Version = a.Version
		}
		out = append(out, item)
	}
	return out
}
