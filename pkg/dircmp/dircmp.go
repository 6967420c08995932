// Package dircmp builds a recursive comparison tree of two directories.
// Files are compared by byte identity only; the result records names, never
// file contents.
package dircmp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Node represents one directory level's comparison result.
// Left is the analysed side, Right the reference side.
type Node struct {
	// Left and Right are the compared directory paths at this level
	Left  string
	Right string

	// LeftOnly contains entry names present only under Left
	LeftOnly []string

	// RightOnly contains entry names present only under Right
	RightOnly []string

	// Diff contains file names present on both sides with unequal bytes.
	// An entry that is a file on one side and a directory on the other
	// appears in both LeftOnly and RightOnly instead, never here.
	Diff []string

	// Subdirs maps common subdirectory names to their comparison nodes
	Subdirs map[string]*Node
}

// Comparer compares directory trees using pooled read buffers
type Comparer struct {
	bufferSize int
	bufferPool *sync.Pool
}

// New creates a comparer with the given read buffer size
func New(bufferSize int) *Comparer {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &Comparer{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// Compare recursively compares left with right and returns the comparison
// tree rooted at those directories. Unreadable entries abort the comparison.
func (c *Comparer) Compare(left, right string) (*Node, error) {
	leftEntries, err := readEntryTypes(left)
	if err != nil {
		return nil, err
	}
	rightEntries, err := readEntryTypes(right)
	if err != nil {
		return nil, err
	}

	node := &Node{
		Left:    left,
		Right:   right,
		Subdirs: make(map[string]*Node),
	}

	for name := range leftEntries {
		if _, ok := rightEntries[name]; !ok {
			node.LeftOnly = append(node.LeftOnly, name)
		}
	}
	for name := range rightEntries {
		if _, ok := leftEntries[name]; !ok {
			node.RightOnly = append(node.RightOnly, name)
		}
	}

	for name, leftIsDir := range leftEntries {
		rightIsDir, ok := rightEntries[name]
		if !ok {
			continue
		}
		switch {
		case leftIsDir && rightIsDir:
			child, err := c.Compare(filepath.Join(left, name), filepath.Join(right, name))
			if err != nil {
				return nil, err
			}
			node.Subdirs[name] = child
		case !leftIsDir && !rightIsDir:
			equal, err := c.filesEqual(filepath.Join(left, name), filepath.Join(right, name))
			if err != nil {
				return nil, err
			}
			if !equal {
				node.Diff = append(node.Diff, name)
			}
		default:
			// file on one side, directory on the other; neither side has a
			// counterpart of its own type, so each is reported as one-sided
			node.LeftOnly = append(node.LeftOnly, name)
			node.RightOnly = append(node.RightOnly, name)
		}
	}

	sort.Strings(node.LeftOnly)
	sort.Strings(node.RightOnly)
	sort.Strings(node.Diff)

	return node, nil
}

// readEntryTypes lists a directory, mapping entry name to is-directory
func readEntryTypes(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}
	types := make(map[string]bool, len(entries))
	for _, entry := range entries {
		types[entry.Name()] = entry.IsDir()
	}
	return types, nil
}

// filesEqual reports whether two files have identical bytes.
// Sizes are checked first to avoid reading files of different length.
func (c *Comparer) filesEqual(left, right string) (bool, error) {
	leftInfo, err := os.Stat(left)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", left, err)
	}
	rightInfo, err := os.Stat(right)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", right, err)
	}
	if leftInfo.Size() != rightInfo.Size() {
		return false, nil
	}

	leftFile, err := os.Open(left)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", left, err)
	}
	defer leftFile.Close()

	rightFile, err := os.Open(right)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", right, err)
	}
	defer rightFile.Close()

	leftBuf := c.bufferPool.Get().(*[]byte)
	rightBuf := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(leftBuf)
	defer c.bufferPool.Put(rightBuf)

	for {
		n1, err1 := io.ReadFull(leftFile, *leftBuf)
		n2, err2 := io.ReadFull(rightFile, *rightBuf)

		if n1 != n2 {
			return false, nil
		}
		if !bytes.Equal((*leftBuf)[:n1], (*rightBuf)[:n2]) {
			return false, nil
		}

		leftDone := err1 == io.EOF || err1 == io.ErrUnexpectedEOF
		rightDone := err2 == io.EOF || err2 == io.ErrUnexpectedEOF
		if leftDone && rightDone {
			return true, nil
		}
		if err1 != nil && !leftDone {
			return false, fmt.Errorf("failed to read %s: %w", left, err1)
		}
		if err2 != nil && !rightDone {
			return false, fmt.Errorf("failed to read %s: %w", right, err2)
		}
		if leftDone != rightDone {
			return false, nil
		}
	}
}
