// Package config provides hierarchical configuration management for relcut
// using koanf. Configuration is loaded with priority: environment variables
// > project config (.relcut.yml) > user config (~/.config/relcut/config.yml)
// > defaults. The legacy .version.json format used by earlier releases is
// still honored, with a migration warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Changelog holds the changelog rendering configuration.
type Changelog struct {
	// Path of the changelog file the release section is prepended to.
	Path string `koanf:"path"`
	// ExtraTypes lists commit types rendered after the fixed categories
	// (e.g. "refactor", "docs", "chore"). Empty means only breaking
	// changes, features, fixes, and performance entries are rendered.
	ExtraTypes []string `koanf:"extra_types"`
	// NewestFirst reverses entry order within each category.
	NewestFirst bool `koanf:"newest_first"`
}

// Configuration represents the relcut CLI tool configuration.
type Configuration struct {
	// TagPrefix prepends the release tag name (default "v").
	TagPrefix string `koanf:"tag_prefix"`
	// Remote names the remote pushed to when push is enabled.
	Remote string `koanf:"remote"`
	// Push pushes the release commit and tag after tagging.
	Push bool `koanf:"push"`

	Changelog Changelog `koanf:"changelog"`

	// Manifests maps a manifest family (helm, npm, composer) to the file
	// paths whose version field is rewritten on release. Each value may
	// be a single path or a list of paths in the source file.
	Manifests map[string][]string `koanf:"-"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relcut.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if userPath, err := UserConfigPath(); err == nil && fileExists(userPath) {
		if err := loadYAMLConfig(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	legacyPath := LegacyProjectConfigPath()

	switch {
	case fileExists(projectPath):
		if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
			return nil, err
		}
		if fileExists(legacyPath) && !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: legacy config found at %s (ignored, using %s)\n", legacyPath, projectPath)
		}
	case fileExists(legacyPath):
		if err := loadLegacyJSONConfig(k, legacyPath, warningWriter, opts.SkipWarnings); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("RELCUT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k)
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadLegacyJSONConfig loads the original .version.json format, whose
// top-level keys are the manifest families, and warns about migration.
func loadLegacyJSONConfig(k *koanf.Koanf, path string, warningWriter io.Writer, skipWarnings bool) error {
	legacy := koanf.New(".")
	if err := legacy.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load legacy config %s: %w", path, err)
	}

	for _, family := range ManifestFamilies() {
		if legacy.Exists(family) {
			k.Set("manifests."+family, legacy.Get(family))
		}
	}

	if !skipWarnings {
		fmt.Fprintf(warningWriter, "Warning: using deprecated config at %s\n", path)
		fmt.Fprintf(warningWriter, "  Move the manifest lists under a 'manifests:' key in %s.\n\n", ProjectConfigPath())
	}
	return nil
}

// finalizeConfig unmarshals, normalizes manifests, and validates.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	raw, _ := k.Get("manifests").(map[string]any)
	manifests, err := normalizeManifests(raw)
	if err != nil {
		return nil, err
	}
	cfg.Manifests = manifests

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalizeManifests accepts a single path or a list of paths per family,
// matching the shapes the legacy format allowed.
func normalizeManifests(raw map[string]any) (map[string][]string, error) {
	manifests := make(map[string][]string, len(raw))
	for family, value := range raw {
		switch v := value.(type) {
		case string:
			manifests[family] = []string{v}
		case []any:
			paths := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("manifests.%s: entries must be strings, got %T", family, item)
				}
				paths = append(paths, s)
			}
			manifests[family] = paths
		case []string:
			manifests[family] = v
		default:
			return nil, fmt.Errorf("manifests.%s: expected a path or list of paths, got %T", family, value)
		}
	}
	return manifests, nil
}

// envTransform converts environment variable names to config keys.
// Examples: RELCUT_TAG_PREFIX -> tag_prefix,
// RELCUT_CHANGELOG_PATH -> changelog.path
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "RELCUT_"))
	if rest, ok := strings.CutPrefix(key, "changelog_"); ok {
		return "changelog." + rest
	}
	return key
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
