package output

import (
	"fmt"
	"io"

	"github.com/racwn/wp-file-analyser/pkg/models"
)

// HumanFormatter renders the report as plain text, one file per line, in an
// easy to copy format
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// Render writes the four report sections. Paths are sorted lexically so the
// report itself diffs cleanly across runs, and rendered exactly as
// classified.
func (f *HumanFormatter) Render(w io.Writer, report *models.Report) error {
	sections := []struct {
		label string
		paths models.PathSet
	}{
		{"DIFF", report.Result.Diff},
		{"EXTRA", report.Result.Extra},
		{"MISSING", report.Result.Missing},
		{"PHP FILES IN 'WP-CONTENT/UPLOADS'", report.UploadsPHP},
	}

	for _, section := range sections {
		if _, err := fmt.Fprintf(w, "%s: (%d)\n", section.label, section.paths.Len()); err != nil {
			return err
		}
		for _, path := range section.paths.Sorted() {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
		}
	}
	return nil
}
