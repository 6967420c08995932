package models

// ArtifactKind categorizes installable WordPress packages
type ArtifactKind string

const (
	// KindPlugin is a plugin package under wp-content/plugins
	KindPlugin ArtifactKind = "plugin"
	// KindTheme is a theme package under wp-content/themes
	KindTheme ArtifactKind = "theme"
)

// Artifact identifies a plugin or theme package and its detected version.
// Metadata extraction may fail to find a version, so presence is tracked
// explicitly instead of overloading the empty string.
type Artifact struct {
	// Kind is the artifact category
	Kind ArtifactKind

	// Name is the package name, defaulting to the artifact directory name
	Name string

	// Version is the detected version string, valid only if HasVersion is true
	Version string

	// HasVersion indicates whether a version was found in the metadata files
	HasVersion bool
}

// String returns a human-readable "name version" form
func (a Artifact) String() string {
	if !a.HasVersion {
		return a.Name + " (version unknown)"
	}
	return a.Name + " " + a.Version
}
