// Package resolve aggregates parsed commits into a single version-bump
// decision and applies it to the current version. It is a pure function
// layer: the current version is threaded through as a parameter, never
// held as package state.
package resolve

import (
	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/semver"
)

// Decision is the outcome of classifying the commits since the last
// release. None means no releasable change was found.
type Decision int

const (
	None Decision = iota
	Patch
	Minor
	Major
)

// String returns the lowercase decision name.
func (d Decision) String() string {
	switch d {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return "none"
	}
}

// Classify computes the bump decision for an ordered commit sequence.
// Rules in priority order, highest wins:
//
//  1. any breaking change        => Major
//  2. any feat commit            => Minor
//  3. any fix or perf commit     => Patch
//  4. otherwise                  => None
//
// Unrecognized commits match none of the rules and have no effect.
func Classify(commits []commit.Parsed) Decision {
	decision := None
	for _, c := range commits {
		switch {
		case c.Breaking:
			return Major
		case c.Type == commit.TypeFeat:
			if decision < Minor {
				decision = Minor
			}
		case c.Type == commit.TypeFix || c.Type == commit.TypePerf:
			if decision < Patch {
				decision = Patch
			}
		}
	}
	return decision
}

// Next applies a decision to the current version and returns the next one.
// The second return value is false when the decision is None and no new
// version is produced.
//
// Pre-1.0 exception: while major is 0, a breaking change bumps the minor
// component instead of graduating to 1.0.0. Any prerelease label on the
// current version is dropped once a concrete next version is computed.
func Next(current semver.Version, decision Decision) (semver.Version, bool) {
	switch decision {
	case Major:
		if current.Major == 0 {
			return semver.Version{Minor: current.Minor + 1}, true
		}
		return semver.Version{Major: current.Major + 1}, true
	case Minor:
		return semver.Version{Major: current.Major, Minor: current.Minor + 1}, true
	case Patch:
		return semver.Version{Major: current.Major, Minor: current.Minor, Patch: current.Patch + 1}, true
	default:
		return semver.Version{}, false
	}
}
