package changelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/relcut/relcut/internal/resolve"
)

// Render writes the section as a markdown block. Patch releases get a
// third-level heading, larger releases a second-level one, so skimming the
// file surfaces the notable versions. The output is deterministic: the
// same section renders to byte-identical text.
func Render(s *Section, w io.Writer) error {
	depth := "##"
	if s.Decision == resolve.Patch {
		depth = "###"
	}

	if _, err := fmt.Fprintf(w, "%s %s (%s)\n\n", depth, s.Tag, s.Date.Format("2006-01-02")); err != nil {
		return fmt.Errorf("rendering section heading: %w", err)
	}

	if s.IsEmpty() {
		_, err := io.WriteString(w, "*no notable changes*\n")
		return err
	}

	for i, cat := range s.Categories {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := renderCategory(&cat, w); err != nil {
			return fmt.Errorf("rendering category %s: %w", cat.Title, err)
		}
	}

	return nil
}

// RenderString is a convenience wrapper that renders to a string.
func RenderString(s *Section) (string, error) {
	var b strings.Builder
	if err := Render(s, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderCategory writes one category heading and its entries.
func renderCategory(c *Category, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "### %s\n", c.Title); err != nil {
		return err
	}

	for _, e := range c.Entries {
		if _, err := io.WriteString(w, formatEntry(e)); err != nil {
			return err
		}
	}

	return nil
}

// formatEntry renders one entry line: scope in bold when present, then the
// subject and the short commit hash reference.
func formatEntry(e Entry) string {
	var b strings.Builder
	b.WriteString("- ")
	if e.Scope != "" {
		b.WriteString("**")
		b.WriteString(e.Scope)
		b.WriteString(":** ")
	}
	b.WriteString(e.Subject)
	b.WriteString(" (")
	b.WriteString(e.Hash)
	b.WriteString(")\n")
	return b.String()
}
