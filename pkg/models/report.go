package models

import (
	"time"
)

// Classification holds the three outcome sets of a tree comparison
type Classification struct {
	// Diff contains files present in both trees with different content
	Diff PathSet

	// Extra contains files present only in the analysed installation
	Extra PathSet

	// Missing contains files present only in the reference copy
	Missing PathSet
}

// NewClassification creates an empty classification
func NewClassification() Classification {
	return Classification{
		Diff:    NewPathSet(),
		Extra:   NewPathSet(),
		Missing: NewPathSet(),
	}
}

// Union returns a new classification combining both classifications
func (c Classification) Union(other Classification) Classification {
	return Classification{
		Diff:    c.Diff.Union(other.Diff),
		Extra:   c.Extra.Union(other.Extra),
		Missing: c.Missing.Union(other.Missing),
	}
}

// IsClean reports whether no differences were found
func (c Classification) IsClean() bool {
	return c.Diff.Len() == 0 && c.Extra.Len() == 0 && c.Missing.Len() == 0
}

// AnalysisStatus represents the overall result of an analysis run
type AnalysisStatus string

const (
	// StatusClean indicates no drift was detected
	StatusClean AnalysisStatus = "clean"
	// StatusDrift indicates at least one modified, extra or missing file
	StatusDrift AnalysisStatus = "drift"
	// StatusFailed indicates the analysis could not be completed
	StatusFailed AnalysisStatus = "failed"
)

// ExitCode returns the process exit code for the analysis status
func (s AnalysisStatus) ExitCode() int {
	switch s {
	case StatusClean:
		return 0
	case StatusDrift:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}

// Report represents the results of one analysis run
type Report struct {
	// ID uniquely identifies the run
	ID string

	// WordPressPath is the analysed installation root
	WordPressPath string

	// ReferencePath is the known-clean reference root
	ReferencePath string

	// CoreVersion is the WordPress version compared against, if known
	CoreVersion string

	// Plugins and Themes are the artifacts detected in the installation
	Plugins []Artifact
	Themes  []Artifact

	// Result is the file classification
	Result Classification

	// UploadsPHP contains script-type files found under wp-content/uploads
	UploadsPHP PathSet

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Status is the overall outcome
	Status AnalysisStatus
}

// Finalize stamps the end time and derives the status from the result sets
func (r *Report) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	if r.Result.IsClean() && r.UploadsPHP.Len() == 0 {
		r.Status = StatusClean
	} else {
		r.Status = StatusDrift
	}
}

// ValidationError represents a configuration or input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
