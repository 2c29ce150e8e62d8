package config

// GetDefaults returns the default configuration values as koanf keys.
// The manifest paths mirror the conventional project layouts relcut has
// always looked at: a Helm chart under .helm/, an npm package.json, and a
// composer.json at the repository root.
func GetDefaults() map[string]any {
	return map[string]any{
		"tag_prefix":             "v",
		"remote":                 "origin",
		"push":                   false,
		"changelog.path":         "CHANGELOG.md",
		"changelog.extra_types":  []string{},
		"changelog.newest_first": false,
		"manifests.helm":         []string{".helm/Chart.yaml"},
		"manifests.npm":          []string{"package.json"},
		"manifests.composer":     []string{"composer.json"},
	}
}

// ManifestFamilies returns the supported manifest families in a stable
// order.
func ManifestFamilies() []string {
	return []string{"helm", "npm", "composer"}
}
