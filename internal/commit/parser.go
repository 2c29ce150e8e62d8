package commit

import (
	"regexp"
	"strings"
)

// headerPattern matches a conventional-commit header line:
// type(optional scope)!?: subject. The subject may be empty.
var headerPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*)(?:\(([^)]*)\))?(!)?:[ \t]?(.*)$`)

// footerPattern matches a trailer line in either "Token: value" or
// "Token #value" form. Tokens are single words (hyphens allowed) with the
// conventional exception of "BREAKING CHANGE".
var footerPattern = regexp.MustCompile(`^((?i:BREAKING[ -]CHANGE)|[A-Za-z][A-Za-z0-9-]*)(?::[ \t]*|[ \t]+#)(.*)$`)

// Parse turns one raw commit message into a Parsed record. It never fails:
// a message whose header does not match the grammar, or whose type token is
// unknown, degrades to TypeOther with the entire header line kept as the
// subject and every other field left empty.
func Parse(raw Raw) Parsed {
	lines := strings.Split(strings.ReplaceAll(raw.Message, "\r\n", "\n"), "\n")
	header := strings.TrimRight(lines[0], " \t")

	m := headerPattern.FindStringSubmatch(header)
	if m == nil || !isKnownType(m[1]) {
		return Parsed{Hash: raw.Hash, Type: TypeOther, Subject: header}
	}

	p := Parsed{
		Hash:     raw.Hash,
		Type:     Type(m[1]),
		Scope:    m[2],
		Subject:  strings.TrimSpace(m[4]),
		Breaking: m[3] == "!",
	}

	body, footers := splitBodyFooters(lines[1:])
	p.Body = body
	p.Footers = footers

	for _, f := range footers {
		if isBreakingKey(f.Key) {
			p.Breaking = true
		}
	}

	return p
}

// ParseAll parses an ordered sequence of raw commits, skipping merge
// commits. The input order is preserved.
func ParseAll(raws []Raw) []Parsed {
	parsed := make([]Parsed, 0, len(raws))
	for _, r := range raws {
		if r.IsMerge() {
			continue
		}
		parsed = append(parsed, Parse(r))
	}
	return parsed
}

// isBreakingKey reports whether a footer key marks a breaking change.
// Both the space and hyphen spellings are accepted, case-insensitively.
func isBreakingKey(key string) bool {
	k := strings.ToUpper(key)
	return k == "BREAKING CHANGE" || k == "BREAKING-CHANGE"
}

// splitBodyFooters separates the lines after the header into body text and
// trailing footers. Footers are the trailing paragraphs whose first line
// matches footerPattern; within such a paragraph, non-matching lines
// continue the value of the preceding footer. The body keeps its internal
// newlines but is trimmed of surrounding blank lines.
func splitBodyFooters(rest []string) (string, []Footer) {
	paragraphs := splitParagraphs(rest)

	// Walk trailing paragraphs while they open with a footer line.
	footerStart := len(paragraphs)
	for footerStart > 0 {
		para := paragraphs[footerStart-1]
		if len(para) == 0 || !footerPattern.MatchString(para[0]) {
			break
		}
		footerStart--
	}

	var footers []Footer
	for _, para := range paragraphs[footerStart:] {
		for _, line := range para {
			if m := footerPattern.FindStringSubmatch(line); m != nil {
				footers = append(footers, Footer{Key: m[1], Value: strings.TrimSpace(m[2])})
			} else if len(footers) > 0 {
				// Continuation of a multi-line footer value.
				footers[len(footers)-1].Value += "\n" + strings.TrimSpace(line)
			}
		}
	}

	var bodyLines []string
	for i, para := range paragraphs[:footerStart] {
		if i > 0 {
			bodyLines = append(bodyLines, "")
		}
		bodyLines = append(bodyLines, para...)
	}

	return strings.Join(bodyLines, "\n"), footers
}

// splitParagraphs groups lines into blank-line separated paragraphs.
func splitParagraphs(lines []string) [][]string {
	var paragraphs [][]string
	var current []string

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}
