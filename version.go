// Package tally is a token-aware caret and formatting engine for calculator
// expression fields.
//
// The engine lives in the token, caret, format and buffer packages; editor
// wraps it in a Bubble Tea component and cmd/tally exposes it on the command
// line.
package tally

import (
	_ "embed"
	"regexp"
	"strings"
)

// SemVer 2.0.0, without the leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag for Version.
func VersionTag() string {
	return "v" + Version()
}

// VersionLine is what `tally --version` prints.
func VersionLine() string {
	return "tally " + VersionTag()
}

func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
