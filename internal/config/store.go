package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirEnv overrides the base config directory (for testing).
	ConfigDirEnv = "SERIMUX_CONFIG_DIR"
	// appDirName is the subdirectory under the platform config dir.
	appDirName = "serimux"

	configFileName = "config.json"
	prefsFileName  = "prefs.yaml"
)

// Store reads and writes the saved device config and app preferences.
// Layout: {config dir}/serimux/config.json, prefs.yaml
type Store struct {
	dir string
}

// NewStore creates a store rooted at the platform config directory,
// or at the path in SERIMUX_CONFIG_DIR if set.
func NewStore() (*Store, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, appDirName)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's base directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveConfig writes cfg as pretty JSON to config.json.
func (s *Store) SaveConfig(cfg Config) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, configFileName), data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadConfig reads config.json. A missing or unreadable file is not an
// error; the second return reports whether a config was loaded.
func (s *Store) LoadConfig() (Config, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, configFileName))
	if err != nil {
		return Config{}, false
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}
