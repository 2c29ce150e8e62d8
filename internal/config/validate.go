package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/relcut/relcut/internal/commit"
)

// ValidateYAMLSyntax checks that a file parses as YAML before koanf loads
// it, so syntax problems surface with the file path attached.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Validate checks that a loaded Configuration is internally consistent.
func Validate(cfg *Configuration) error {
	for _, r := range cfg.TagPrefix {
		if unicode.IsDigit(r) {
			return fmt.Errorf("tag_prefix %q must not contain digits", cfg.TagPrefix)
		}
	}

	if cfg.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if cfg.Changelog.Path == "" {
		return fmt.Errorf("changelog.path must not be empty")
	}

	for _, typ := range cfg.Changelog.ExtraTypes {
		if !isKnownCommitType(typ) {
			return fmt.Errorf("changelog.extra_types: unknown commit type %q (known: %s)",
				typ, knownCommitTypes())
		}
	}

	known := make(map[string]bool)
	for _, family := range ManifestFamilies() {
		known[family] = true
	}
	for family := range cfg.Manifests {
		if !known[family] {
			return fmt.Errorf("manifests: unknown family %q (known: %s)",
				family, strings.Join(ManifestFamilies(), ", "))
		}
	}

	return nil
}

// ExtraCommitTypes converts the configured extra type names to commit
// types. Validate has already rejected unknown names.
func (c *Configuration) ExtraCommitTypes() []commit.Type {
	types := make([]commit.Type, 0, len(c.Changelog.ExtraTypes))
	for _, name := range c.Changelog.ExtraTypes {
		types = append(types, commit.Type(name))
	}
	return types
}

func isKnownCommitType(name string) bool {
	for _, t := range commit.KnownTypes {
		if string(t) == name {
			return true
		}
	}
	return false
}

func knownCommitTypes() string {
	names := make([]string, len(commit.KnownTypes))
	for i, t := range commit.KnownTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
