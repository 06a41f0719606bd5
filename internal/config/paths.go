package config

import (
	"os"
	"path/filepath"
)

// Project-level config paths, relative to the working directory.
const (
	ProjectConfigPath       = ".shiplog/config.yml"
	LegacyProjectConfigPath = ".shiplog/config.json"
)

// UserConfigPath returns the XDG-compliant user config path
// (~/.config/shiplog/config.yml, honoring XDG_CONFIG_HOME).
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shiplog", "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shiplog", "config.yml"), nil
}
