package changelog

import (
	"time"

	"github.com/relcut/relcut/internal/commit"
	"github.com/relcut/relcut/internal/resolve"
	"github.com/relcut/relcut/internal/semver"
)

// Entry is a single rendered changelog line: optional scope, subject, and
// a short commit identifier for the reference back to history.
type Entry struct {
	Scope   string
	Subject string
	Hash    string
}

// Category groups entries under a display title such as "Features".
type Category struct {
	Title   string
	Entries []Entry
}

// Section is one release's worth of changelog: the resolved version, the
// release timestamp, and the categorized entries in display order.
type Section struct {
	Version    semver.Version
	Tag        string
	Date       time.Time
	Decision   resolve.Decision
	Categories []Category
}

// IsEmpty reports whether the section has no rendered entries.
func (s *Section) IsEmpty() bool {
	for _, c := range s.Categories {
		if len(c.Entries) > 0 {
			return false
		}
	}
	return true
}

// Count returns the total number of entries across all categories.
func (s *Section) Count() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Entries)
	}
	return n
}

// categoryTitles maps commit types to their changelog headings. Breaking
// changes are pulled out into their own category before this mapping runs.
var categoryTitles = map[commit.Type]string{
	commit.TypeFeat:     "Features",
	commit.TypeFix:      "Bug Fixes",
	commit.TypePerf:     "Performance",
	commit.TypeRefactor: "Code Refactoring",
	commit.TypeDocs:     "Documentation",
	commit.TypeChore:    "Chores",
	commit.TypeBuild:    "Build System",
	commit.TypeCI:       "Continuous Integration",
	commit.TypeTest:     "Tests",
	commit.TypeStyle:    "Styles",
}

// breakingTitle heads the category for commits carrying a breaking flag.
const breakingTitle = "Breaking Changes"

// defaultOrder is the fixed display order of the always-rendered type
// categories. Extra types configured by the user follow these.
var defaultOrder = []commit.Type{commit.TypeFeat, commit.TypeFix, commit.TypePerf}
