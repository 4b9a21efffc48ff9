package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoll loads Roll configuration.
// Search order: customPath -> ~/.roll/configs/roll.yaml -> ./configs/roll.yaml -> embedded default
// Files only need to set the keys they change; the rest keep their defaults.
func LoadRoll(customPath string) (RollConfig, error) {
	cfg := DefaultRollConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("roll.yaml"); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", "roll.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultRollConfig()
	if err := yaml.Unmarshal(defaultRollYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultRollConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryFile reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next location in the search order is used.
func tryFile(path string) (RollConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RollConfig{}, false
	}
	cfg := DefaultRollConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RollConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return RollConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roll", "configs", filename)
}
