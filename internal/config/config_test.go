package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/commit"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "does-not-exist.yml"),
		SkipWarnings:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "v", cfg.TagPrefix)
	assert.Equal(t, "origin", cfg.Remote)
	assert.False(t, cfg.Push)
	assert.Equal(t, "CHANGELOG.md", cfg.Changelog.Path)
	assert.Empty(t, cfg.Changelog.ExtraTypes)
	assert.Equal(t, []string{".helm/Chart.yaml"}, cfg.Manifests["helm"])
	assert.Equal(t, []string{"package.json"}, cfg.Manifests["npm"])
	assert.Equal(t, []string{"composer.json"}, cfg.Manifests["composer"])
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "relcut.yml", `
tag_prefix: ""
push: true
changelog:
  path: HISTORY.md
  extra_types: [refactor, docs]
manifests:
  npm: packages/app/package.json
  helm:
    - charts/app/Chart.yaml
    - charts/worker/Chart.yaml
`)

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.TagPrefix)
	assert.True(t, cfg.Push)
	assert.Equal(t, "HISTORY.md", cfg.Changelog.Path)
	assert.Equal(t, []string{"refactor", "docs"}, cfg.Changelog.ExtraTypes)
	// Single path normalized to a one-element list.
	assert.Equal(t, []string{"packages/app/package.json"}, cfg.Manifests["npm"])
	assert.Equal(t, []string{"charts/app/Chart.yaml", "charts/worker/Chart.yaml"}, cfg.Manifests["helm"])
	// Untouched family keeps its default.
	assert.Equal(t, []string{"composer.json"}, cfg.Manifests["composer"])
}

func TestLoad_LegacyVersionJSON(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, ".version.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`{"npm": "web/package.json", "helm": [".helm/Chart.yaml"]}`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(dir, "missing.yml"),
		WarningWriter:     &warnings,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"web/package.json"}, cfg.Manifests["npm"])
	assert.Contains(t, warnings.String(), "deprecated config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RELCUT_TAG_PREFIX", "release-")
	t.Setenv("RELCUT_PUSH", "true")
	t.Setenv("RELCUT_CHANGELOG_PATH", "docs/CHANGELOG.md")

	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
		SkipWarnings:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "release-", cfg.TagPrefix)
	assert.True(t, cfg.Push)
	assert.Equal(t, "docs/CHANGELOG.md", cfg.Changelog.Path)
}

func TestLoad_InvalidYAMLSyntax(t *testing.T) {
	path := writeConfig(t, "relcut.yml", "tag_prefix: [unclosed\n")

	_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate  func(cfg *Configuration)
		wantErr string
	}{
		"valid defaults": {
			mutate: func(cfg *Configuration) {},
		},
		"digit in tag prefix": {
			mutate:  func(cfg *Configuration) { cfg.TagPrefix = "v2-" },
			wantErr: "tag_prefix",
		},
		"empty remote": {
			mutate:  func(cfg *Configuration) { cfg.Remote = "" },
			wantErr: "remote",
		},
		"empty changelog path": {
			mutate:  func(cfg *Configuration) { cfg.Changelog.Path = "" },
			wantErr: "changelog.path",
		},
		"unknown extra type": {
			mutate:  func(cfg *Configuration) { cfg.Changelog.ExtraTypes = []string{"wip"} },
			wantErr: "unknown commit type",
		},
		"unknown manifest family": {
			mutate:  func(cfg *Configuration) { cfg.Manifests = map[string][]string{"cargo": {"Cargo.toml"}} },
			wantErr: "unknown family",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := &Configuration{
				TagPrefix: "v",
				Remote:    "origin",
				Changelog: Changelog{Path: "CHANGELOG.md"},
			}
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExtraCommitTypes(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{Changelog: Changelog{ExtraTypes: []string{"refactor", "chore"}}}
	assert.Equal(t, []commit.Type{commit.TypeRefactor, commit.TypeChore}, cfg.ExtraCommitTypes())
}
