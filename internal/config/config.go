// Package config loads the mediafmt configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user-facing configuration. All fields have working
// defaults; an absent config file is not an error.
type Config struct {
	// Style selects the rendered separator style: dots, spaces, or mixed.
	Style string `yaml:"style"`

	// Templates overrides the built-in filename templates, keyed by
	// media type (tv_show, tv_special, movie, anime, anime_special).
	Templates map[string]string `yaml:"templates,omitempty"`

	Anthology AnthologyConfig `yaml:"anthology"`
	Providers ProvidersConfig `yaml:"providers"`
}

// AnthologyConfig controls anthology segmentation.
type AnthologyConfig struct {
	MaxSegments int `yaml:"max_segments"`
	// Assistant timeout in seconds. Zero disables the client timeout.
	TimeoutSeconds int          `yaml:"timeout"`
	Ollama         OllamaConfig `yaml:"ollama"`
}

// OllamaConfig configures the optional local text assistant.
type OllamaConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// ProvidersConfig holds metadata provider credentials and cache settings.
type ProvidersConfig struct {
	TVDBAPIKey string `yaml:"tvdb_api_key,omitempty"`
	TMDBAPIKey string `yaml:"tmdb_api_key,omitempty"`
	Language   string `yaml:"language,omitempty"`
	// Episode list cache TTL in hours.
	CacheHours int `yaml:"cache_hours"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Style: "dots",
		Anthology: AnthologyConfig{
			MaxSegments:    10,
			TimeoutSeconds: 30,
			Ollama: OllamaConfig{
				Model: "llama3",
			},
		},
		Providers: ProvidersConfig{
			Language:   "en-US",
			CacheHours: 24,
		},
	}
}

// Load reads the configuration from customPath, or from the standard
// location when customPath is empty. A missing file yields the defaults.
func Load(customPath string) (*Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		path = findConfig()
	}
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if customPath == "" && os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
	}

	return &cfg, nil
}

// findConfig looks for the config file under XDG_CONFIG_HOME, then the
// user's ~/.config.
func findConfig() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}
	if xdgConfig == "" {
		return ""
	}

	path := filepath.Join(xdgConfig, "mediafmt", "config.yml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
