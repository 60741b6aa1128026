package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.flow/configs/flow.yaml -> ./configs/flow.yaml -> embedded default.
// Missing keys keep their default values.
func Load(customPath string) (FlowConfig, error) {
	cfg := DefaultFlowConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flow.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := parseOver(data); ok {
				return loaded, loaded.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flow.yaml")); err == nil {
		if loaded, ok := parseOver(data); ok {
			return loaded, loaded.Validate()
		}
	}

	// Use embedded default YAML
	if loaded, ok := parseOver(defaultFlowYAML); ok {
		return loaded, nil
	}
	return DefaultFlowConfig(), nil // Fallback to hardcoded if embed fails
}

// parseOver unmarshals data on top of the defaults.
func parseOver(data []byte) (FlowConfig, bool) {
	cfg := DefaultFlowConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlowConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flow", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
