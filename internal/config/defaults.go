package config

// Default values applied before any config file or environment override.
const (
	DefaultModel      = "anthropic"
	DefaultGroupBy    = "day"
	DefaultStyle      = "regular"
	DefaultOutput     = "CHANGELOG.md"
	DefaultNumCommits = 100
)

// Defaults returns the default configuration as koanf key/value pairs.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"model":       DefaultModel,
		"group_by":    DefaultGroupBy,
		"style":       DefaultStyle,
		"branch":      "",
		"output":      DefaultOutput,
		"num_commits": DefaultNumCommits,
		"summary":     false,
	}
}
