package output

import (
	"fmt"
	"io"

	"github.com/racwn/wp-file-analyser/pkg/models"
)

// Formatter defines the interface for report rendering
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Render writes the report to w
	Render(w io.Writer, report *models.Report) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for the given format name
func New(format string) (Formatter, error) {
	switch format {
	case "human":
		return NewHumanFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json)", format)
	}
}
