package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigPath returns the project-level config path, relative to the
// working directory.
func ProjectConfigPath() string {
	return ".relcut.yml"
}

// LegacyProjectConfigPath returns the path of the original JSON config
// format, kept for backward compatibility.
func LegacyProjectConfigPath() string {
	return ".version.json"
}

// UserConfigPath returns the XDG-style user-level config path.
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "relcut", "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "relcut", "config.yml"), nil
}
