package changelog

import (
	"fmt"
	"os"
)

// Prepend writes the rendered section on top of the changelog file at
// path, creating the file when it does not exist. The new section is
// separated from existing content by a blank line.
func Prepend(path string, s *Section) error {
	rendered, err := RenderString(s)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading changelog file: %w", err)
	}

	content := rendered
	if len(existing) > 0 {
		content = rendered + "\n" + string(existing)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing changelog file: %w", err)
	}

	return nil
}
