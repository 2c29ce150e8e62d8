// Package patch rewrites the version field inside project manifest files.
// Each manifest family (Helm chart, npm package, Composer package) gets its
// own Patcher variant that knows how to locate the version field; the
// release engine hands every patcher the same canonical version string and
// never branches on file syntax itself.
package patch

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Patcher locates and replaces the version field in one manifest format.
type Patcher interface {
	// Name identifies the manifest family (e.g. "helm", "npm").
	Name() string
	// Patch rewrites the version field in the file at path. It returns
	// false with a nil error when the file does not exist or contains no
	// version field; both are skips, not failures.
	Patch(path, version string) (bool, error)
}

// regexPatcher rewrites the first match of a version-field pattern,
// leaving the rest of the file byte-for-byte untouched. A verify hook
// checks the patched content still parses in the manifest's syntax.
type regexPatcher struct {
	name    string
	field   *regexp.Regexp
	rewrite func(version string) string
	verify  func(data []byte) error
}

func (p *regexPatcher) Name() string {
	return p.name
}

func (p *regexPatcher) Patch(path, version string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	loc := p.field.FindSubmatchIndex(data)
	if loc == nil {
		return false, nil
	}

	replacement := p.field.Expand(nil, []byte(p.rewrite(version)), data, loc)
	patched := append([]byte{}, data[:loc[0]]...)
	patched = append(patched, replacement...)
	patched = append(patched, data[loc[1]:]...)

	if p.verify != nil {
		if err := p.verify(patched); err != nil {
			return false, fmt.Errorf("patched %s is no longer valid %s: %w", path, p.name, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stating %s: %w", path, err)
	}
	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}

// NewHelmChart patches the appVersion field of a Helm Chart.yaml.
func NewHelmChart() Patcher {
	return &regexPatcher{
		name:  "helm",
		field: regexp.MustCompile(`(?m)^(appVersion:[ \t]*).*$`),
		rewrite: func(version string) string {
			return "${1}" + version
		},
		verify: verifyYAML,
	}
}

// NewNPMPackage patches the top-level version field of a package.json.
func NewNPMPackage() Patcher {
	return newJSONVersionPatcher("npm")
}

// NewComposer patches the version field of a composer.json.
func NewComposer() Patcher {
	return newJSONVersionPatcher("composer")
}

func newJSONVersionPatcher(name string) Patcher {
	return &regexPatcher{
		name:  name,
		field: regexp.MustCompile(`("version"[ \t]*:[ \t]*")[^"]*(")`),
		rewrite: func(version string) string {
			return "${1}" + version + "${2}"
		},
		verify: verifyJSON,
	}
}

func verifyYAML(data []byte) error {
	var doc any
	return yaml.Unmarshal(data, &doc)
}

func verifyJSON(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON")
	}
	return nil
}
