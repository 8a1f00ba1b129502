package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local directories.
const configFile = "bricks.yaml"

// LoadBricks loads the brick breaker configuration.
// Search order: customPath -> ~/.bricks/bricks.yaml -> ./configs/bricks.yaml -> embedded default.
//
// Files are decoded over DefaultBricksConfig, so a partial file only
// overrides the keys it names. The result is validated.
func LoadBricks(customPath string) (BricksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BricksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BricksConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// A missing file falls through; a broken one is an error.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path)
		if err != nil {
			return BricksConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultBricksYAML); err == nil {
		return cfg, nil
	}
	return DefaultBricksConfig(), nil // Fallback to hardcoded if embed fails
}

// loadFile parses the config at path. found is false when the file does not
// exist.
func loadFile(path string) (cfg BricksConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return BricksConfig{}, false, nil
	}
	if err != nil {
		return BricksConfig{}, false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return BricksConfig{}, true, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (BricksConfig, error) {
	cfg := DefaultBricksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BricksConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BricksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", filename)
}
