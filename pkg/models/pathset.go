package models

import "sort"

// PathSet is an unordered collection of unique file paths
type PathSet map[string]struct{}

// NewPathSet creates a path set containing the given paths
func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts a path into the set
// Adding an existing path is a no-op
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether the path is in the set
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths in the set
func (s PathSet) Len() int {
	return len(s)
}

// Union returns a new set containing paths from both sets
func (s PathSet) Union(other PathSet) PathSet {
	result := make(PathSet, len(s)+len(other))
	for p := range s {
		result[p] = struct{}{}
	}
	for p := range other {
		result[p] = struct{}{}
	}
	return result
}

// Sorted returns the paths in lexical order
func (s PathSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
