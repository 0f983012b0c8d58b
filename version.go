// Package lined is a minimal full-screen line editor for terminals.
//
// The editing core lives in the buffer and editor packages; render provides
// the terminal targets the editor draws to.
package lined

import (
	_ "embed"
	"regexp"
	"strings"
)

// release matches a SemVer 2.0.0 string such as 1.4.0-rc.1+build.5.
var release = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var versionFile string

// Version is the contents of the VERSION file, for example "0.1.0".
func Version() string {
	return strings.TrimSpace(versionFile)
}

// VersionTag is the banner `lined -version` prints and the log records at
// startup.
func VersionTag() string {
	return "lined v" + Version()
}

// IsSemver checks a release string, ignoring surrounding whitespace. Tags
// with a leading v are rejected.
func IsSemver(v string) bool {
	return release.MatchString(strings.TrimSpace(v))
}
