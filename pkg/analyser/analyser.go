// Package analyser classifies the differences between a WordPress
// installation and a known-clean reference tree.
package analyser

import (
	"os"
	"path/filepath"

	"github.com/racwn/wp-file-analyser/pkg/dircmp"
	"github.com/racwn/wp-file-analyser/pkg/logging"
	"github.com/racwn/wp-file-analyser/pkg/models"
)

// Analyser walks a comparison tree and buckets every file as modified,
// extra or missing
type Analyser struct {
	ignore *IgnoreList
	log    logging.Logger
}

// New creates an analyser using the given ignore policy
func New(ignore *IgnoreList, logger logging.Logger) *Analyser {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Analyser{
		ignore: ignore,
		log:    logger,
	}
}

// Classify derives the diff, extra and missing sets from a comparison tree.
//
// Depth-first over every node; each level returns its own sets and parents
// union children's results, so classifying the same tree twice yields
// identical sets. Ignore rules suppress extra files only: a modified or
// missing file under an ignored subtree is still reported, which is why
// ignored subtrees are recursed into rather than pruned.
func (a *Analyser) Classify(node *dircmp.Node) models.Classification {
	result := models.NewClassification()

	for _, name := range node.Diff {
		result.Diff.Add(filepath.Join(node.Left, name))
	}

	for _, name := range node.LeftOnly {
		path := filepath.Join(node.Left, name)
		if isDirectory(path) {
			// only regular files are reported; files beneath left-only
			// directories never reach the comparison tree
			continue
		}
		if a.ignore != nil && a.ignore.Ignored(path) {
			a.log.Debug("suppressing extra file in ignore zone", logging.Fields{"path": path})
			continue
		}
		result.Extra.Add(path)
	}

	// missing reference files are always reported; they cannot be user content
	for _, name := range node.RightOnly {
		path := filepath.Join(node.Right, name)
		if isDirectory(path) {
			continue
		}
		result.Missing.Add(path)
	}

	for _, child := range node.Subdirs {
		result = result.Union(a.Classify(child))
	}

	return result
}

// isDirectory reports whether path exists and is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
