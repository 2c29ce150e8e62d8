// Package commit parses raw git commit messages into structured
// conventional-commit records. Parsing is total: a message that does not
// follow the convention degrades to TypeOther with the header preserved
// as the subject, it never produces an error.
package commit

// Type is the conventional-commit change type taken from the header line.
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypePerf     Type = "perf"
	TypeRefactor Type = "refactor"
	TypeDocs     Type = "docs"
	TypeChore    Type = "chore"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeTest     Type = "test"
	TypeStyle    Type = "style"
	// TypeOther marks commits whose header did not match the convention
	// or used an unknown type token.
	TypeOther Type = "other"
)

// KnownTypes lists every recognized type token. Matching is case-sensitive;
// "Feat" is not a feature commit.
var KnownTypes = []Type{
	TypeFeat, TypeFix, TypePerf, TypeRefactor, TypeDocs,
	TypeChore, TypeBuild, TypeCI, TypeTest, TypeStyle,
}

// Raw is a commit as delivered by the history source: identifier, full
// message, and parent count. Merge commits (Parents > 1) are excluded
// from classification by the caller.
type Raw struct {
	Hash    string
	Message string
	Parents int
}

// IsMerge reports whether the commit has more than one parent.
func (r Raw) IsMerge() bool {
	return r.Parents > 1
}

// ShortHash returns the first 10 characters of the commit identifier,
// the width used in rendered changelog entries.
func (r Raw) ShortHash() string {
	if len(r.Hash) > 10 {
		return r.Hash[:10]
	}
	return r.Hash
}

// Footer is a single trailer line such as "Reviewed-by: alice" or
// "Fixes #42". Keys are matched case-insensitively; duplicates are
// retained in order.
type Footer struct {
	Key   string
	Value string
}

// Parsed is the structured form of one commit message. It is derived once
// from a Raw commit and never mutated afterward.
type Parsed struct {
	Hash     string
	Type     Type
	Scope    string
	Subject  string
	Body     string
	Footers  []Footer
	Breaking bool
}

// isKnownType reports whether token is one of the recognized type tokens.
func isKnownType(token string) bool {
	for _, t := range KnownTypes {
		if string(t) == token {
			return true
		}
	}
	return false
}
