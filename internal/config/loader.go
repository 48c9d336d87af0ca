package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local configuration file.
const LocalPath = "configs/matrixpong.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.matrixpong/config.yaml -> ./configs/matrixpong.yaml -> embedded default
//
// Files are applied on top of Default, so they only need the keys they change.
// An unreadable or malformed customPath is an error; the other locations are
// skipped when they cannot be used.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{LocalPath}
	if p := userConfigPath(); p != "" {
		candidates = []string{p, LocalPath}
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, cfg.Validate()
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matrixpong", "config.yaml")
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
