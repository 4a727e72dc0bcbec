package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.flappy/config.yaml -> ./config.yaml ->
// embedded default. A custom path that cannot be read or parsed is an error;
// the fallback locations are skipped silently.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Hardcoded fallback if the embed is ever broken
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the per-user config location, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "config.yaml")
}
