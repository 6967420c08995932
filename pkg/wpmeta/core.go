package wpmeta

import (
	"strings"

	"github.com/racwn/wp-file-analyser/pkg/logging"
)

// VersionFilePath is the installation-relative file declaring the core version
const VersionFilePath = "wp-includes/version.php"

// versionMarker is the assignment that carries the version literal
const versionMarker = "$wp_version ="

// CoreVersion extracts the WordPress version from the given version file.
// The value is the literal between the first two single quotes on the first
// line containing the marker. Inconsistent quoting, such as
// "$wp_version = ;", is reported as absent rather than an empty value.
func CoreVersion(log logging.Logger, versionFile string) (string, bool) {
	line, ok := searchFileForString(log, versionFile, versionMarker)
	if !ok {
		log.Debug("version marker not found", logging.Fields{"path": versionFile})
		return "", false
	}

	cutStart := strings.Index(line, "'") + 1
	if cutStart <= 0 {
		return "", false
	}
	rest := strings.Index(line[cutStart+1:], "'")
	if rest < 0 {
		return "", false
	}
	cutEnd := cutStart + 1 + rest
	if cutEnd <= cutStart {
		return "", false
	}
	return line[cutStart:cutEnd], true
}
