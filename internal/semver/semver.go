// Package semver models the semantic version numbers relcut reads from
// release tags and writes back into manifests. The model is deliberately
// small: a numeric triple with an optional prerelease label. Build metadata
// and version ranges are out of scope.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionPattern accepts an optional non-numeric prefix (commonly "v"),
// three dot-separated integers, and an optional prerelease suffix.
var versionPattern = regexp.MustCompile(`^([^0-9]*)(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z.-]+))?$`)

// InvalidVersionError reports a string that could not be parsed as a
// semantic version. A malformed release tag is fatal to a run: the engine
// must not guess a baseline from corrupt input.
type InvalidVersionError struct {
	Input string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version format: %q", e.Input)
}

// Version is a semantic version. The three numeric fields are always
// present; the zero value is 0.0.0.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

// Parse parses a tag or manifest string into a Version. A leading
// non-numeric prefix such as "v" is accepted and discarded. Returns an
// *InvalidVersionError when the input is not three dot-separated integers
// with an optional "-prerelease" suffix.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}, &InvalidVersionError{Input: s}
	}

	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])
	patch, _ := strconv.Atoi(m[4])

	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: m[5]}, nil
}

// String renders the canonical "major.minor.patch" form. Prefix and
// prerelease are caller-controlled and never re-added here.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions: numeric triple first, and a version carrying a
// prerelease label sorts before the same bare triple. Returns -1, 0, or 1.
func Compare(a, b Version) int {
	if c := compareInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareInt(a.Patch, b.Patch); c != 0 {
		return c
	}

	switch {
	case a.Prerelease == b.Prerelease:
		return 0
	case a.Prerelease == "":
		return 1
	case b.Prerelease == "":
		return -1
	default:
		return strings.Compare(a.Prerelease, b.Prerelease)
	}
}

// Less reports whether a orders before b.
func Less(a, b Version) bool {
	return Compare(a, b) < 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
