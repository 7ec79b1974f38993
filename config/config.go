// Package config loads and saves the cliphound configuration file. The file
// is optional: callers fall back to built-in defaults when it is absent, and
// command-line flags always win over configured values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration.
type Config struct {
	// OutputDir is the default directory clips are written to.
	OutputDir string `yaml:"output_dir"`

	// FFmpegPath overrides FFmpeg auto-detection when set.
	FFmpegPath string `yaml:"ffmpeg_path"`

	// AudioFallback enables the AAC re-encode retry when audio cannot be
	// stream-copied into the output container.
	AudioFallback bool `yaml:"audio_fallback"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		OutputDir:     "downloads",
		AudioFallback: true,
	}
}

// DefaultPath returns the conventional location of the configuration file
// inside the user's home directory. It returns an empty string when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cliphound.yaml")
}

// Load reads and parses the configuration from the specified YAML file.
// A missing file is not an error: the defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
