// Package inkwell is a terminal rich-text editor with inline tables and HTML
// export. The editor component lives in package editor; the models it drives
// live in packages table and richtext.
package inkwell

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format, without the `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// UserAgent names this build, as printed by inkwell --version.
func UserAgent() string {
	return "inkwell/" + Version()
}
