package changelog

import (
	"strings"
	"time"

	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/resolve"
	"github.com/relcut/relcut/internal/semver"
)

// Options controls how a Section is assembled from parsed commits.
type Options struct {
	// TagPrefix is prepended to the canonical version string in the
	// section heading (commonly "v").
	TagPrefix string
	// ExtraTypes lists additional commit types to render after the fixed
	// categories. Types outside this list (and the fixed ones) are
	// omitted from the output.
	ExtraTypes []commit.Type
	// NewestFirst reverses the entry order within each category. The
	// default preserves history order, oldest first.
	NewestFirst bool
}

// Build groups parsed commits into a Section for the given version and
// release timestamp. Breaking commits land in the Breaking Changes
// category and nowhere else; release commits (chore with scope "release")
// and unrecognized commits are excluded.
func Build(version semver.Version, date time.Time, decision resolve.Decision, commits []commit.Parsed, opts Options) *Section {
	section := &Section{
		Version:  version,
		Tag:      opts.TagPrefix + version.String(),
		Date:     date,
		Decision: decision,
	}

	order := append([]commit.Type{}, defaultOrder...)
	order = append(order, opts.ExtraTypes...)

	var breaking []Entry
	byType := make(map[commit.Type][]Entry)

	for _, c := range commits {
		if c.Type == commit.TypeOther || isReleaseCommit(c) {
			continue
		}
		entry := Entry{Scope: c.Scope, Subject: c.Subject, Hash: shortHash(c.Hash)}
		if c.Breaking {
			breaking = append(breaking, entry)
			continue
		}
		byType[c.Type] = append(byType[c.Type], entry)
	}

	if len(breaking) > 0 {
		section.Categories = append(section.Categories, Category{
			Title:   breakingTitle,
			Entries: orderEntries(breaking, opts.NewestFirst),
		})
	}

	seen := make(map[commit.Type]bool)
	for _, typ := range order {
		if seen[typ] {
			continue
		}
		seen[typ] = true
		if entries := byType[typ]; len(entries) > 0 {
			section.Categories = append(section.Categories, Category{
				Title:   categoryTitles[typ],
				Entries: orderEntries(entries, opts.NewestFirst),
			})
		}
	}

	return section
}

// isReleaseCommit reports whether the commit is one of relcut's own
// release commits, which never appear in a rendered changelog.
func isReleaseCommit(c commit.Parsed) bool {
	return c.Type == commit.TypeChore && strings.EqualFold(c.Scope, "release")
}

func orderEntries(entries []Entry, newestFirst bool) []Entry {
	if !newestFirst {
		return entries
	}
	reversed := make([]Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	return reversed
}

func shortHash(hash string) string {
	if len(hash) > 10 {
		return hash[:10]
	}
	return hash
}
