package config

import (
	"fmt"
	"strings"

	"github.com/evanhall-dev/shiplog/internal/changelog"
	"github.com/evanhall-dev/shiplog/internal/provider"
)

var validModels = []string{"anthropic", "openai"}

// Validate checks enum fields and value ranges after all sources are merged.
func Validate(cfg *Configuration) error {
	if !contains(validModels, cfg.Model) {
		return fmt.Errorf("invalid model %q (valid: %s)", cfg.Model, strings.Join(validModels, ", "))
	}
	if !changelog.IsValidGroupMode(cfg.GroupBy) {
		return fmt.Errorf("invalid group_by %q (valid: %s)", cfg.GroupBy, strings.Join(changelog.ValidGroupModes(), ", "))
	}
	if !provider.IsValidStyle(cfg.Style) {
		return fmt.Errorf("invalid style %q (valid: %s)", cfg.Style, strings.Join(provider.ValidStyles(), ", "))
	}
	if cfg.NumCommits < 0 {
		return fmt.Errorf("num_commits must be >= 0 (0 means all), got %d", cfg.NumCommits)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
