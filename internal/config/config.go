// Package config provides hierarchical configuration management for shiplog
// using koanf. Values are loaded with priority: environment variables >
// project config (.shiplog/config.yml) > user config
// (~/.config/shiplog/config.yml) > defaults. A .env file in the working
// directory is loaded first so API keys can live next to the project.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for configuration environment variables
// (e.g. SHIPLOG_STYLE, SHIPLOG_GROUP_BY).
const envPrefix = "SHIPLOG_"

// Credentials holds the API secrets the clients are constructed with.
// They are resolved once at load time and passed in explicitly; no
// component reads the process environment on its own.
type Credentials struct {
	GitHubToken  string
	AnthropicKey string
	OpenAIKey    string
}

// HasProviderKey reports whether a key for the named provider is present.
func (c Credentials) HasProviderKey(provider string) bool {
	switch provider {
	case "anthropic":
		return c.AnthropicKey != ""
	case "openai":
		return c.OpenAIKey != ""
	}
	return false
}

// Configuration holds the tool defaults that flags and interactive
// prompts overlay. Fields map 1:1 to config file keys.
type Configuration struct {
	// Model selects the text-generation provider: "anthropic" or "openai".
	Model string `koanf:"model"`
	// GroupBy buckets commits by "day", "week", or "month".
	GroupBy string `koanf:"group_by"`
	// Style selects the changelog tone: "playful", "regular", "corporate".
	Style string `koanf:"style"`
	// Branch overrides branch resolution; empty means main/master/default.
	Branch string `koanf:"branch"`
	// Output is the changelog file path.
	Output string `koanf:"output"`
	// NumCommits caps how many commits are processed; 0 means all.
	NumCommits int `koanf:"num_commits"`
	// Summary regenerates the top-of-file summary block on each run.
	Summary bool `koanf:"summary"`

	Credentials Credentials `koanf:"-"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .shiplog/config.yml).
	ProjectConfigPath string
	// SkipDotenv disables .env loading (used by tests).
	SkipDotenv bool
}

// Load loads configuration from defaults, user and project config files,
// and the environment.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	if !opts.SkipDotenv {
		// Best effort; a missing .env is the normal case.
		_ = godotenv.Load()
	}

	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	cfg.Credentials = credentialsFromEnv()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadUserConfig loads ~/.config/shiplog/config.yml when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil // no home directory; nothing to load
	}
	return loadConfigFile(k, path)
}

// loadProjectConfig loads the project-level config. YAML is preferred;
// a legacy .shiplog/config.json is still honored.
func loadProjectConfig(k *koanf.Koanf, override string) error {
	if override != "" {
		if !fileExists(override) {
			return fmt.Errorf("config file not found: %s", override)
		}
		return loadConfigFile(k, override)
	}

	if fileExists(ProjectConfigPath) {
		return loadConfigFile(k, ProjectConfigPath)
	}
	if fileExists(LegacyProjectConfigPath) {
		return loadConfigFile(k, LegacyProjectConfigPath)
	}
	return nil
}

// loadConfigFile parses a single YAML or JSON config file into k.
func loadConfigFile(k *koanf.Koanf, path string) error {
	if !fileExists(path) {
		return nil
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.HasSuffix(path, ".json") {
		parser = json.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig applies SHIPLOG_* environment overrides.
// SHIPLOG_GROUP_BY maps to group_by, SHIPLOG_NUM_COMMITS to num_commits, etc.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// credentialsFromEnv reads the API secrets. Secrets stay out of config
// files; the well-known variable names are the interface.
func credentialsFromEnv() Credentials {
	return Credentials{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
