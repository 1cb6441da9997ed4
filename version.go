// Package bidiedit is a bidirectional single-line text edit core with a
// terminal widget on top. The library lives in the sledit, bidi, shaper and
// editor packages; this package only carries the release version.
package bidiedit

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag, or "devel" when the embedded
// VERSION file does not hold a SemVer string.
func VersionTag() string {
	v := Version()
	if !semverRE.MatchString(v) {
		return "devel"
	}
	return "v" + v
}
