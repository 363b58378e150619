package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs are app-level preferences read from prefs.yaml at startup.
// Device parameters live in Config; these only shape the UI shell.
type Prefs struct {
	PollIntervalMS int    `yaml:"poll_interval_ms"` // serial poll tick (default 100)
	LogCapacity    int    `yaml:"log_capacity"`     // per-session log ring size (default 10000)
	DefaultLayout  string `yaml:"default_layout"`   // layout mode name (default "Single")
	Timestamps     *bool  `yaml:"timestamps"`       // show log timestamps (default true)
}

// DefaultPrefs returns the preferences used when no prefs.yaml exists.
func DefaultPrefs() Prefs {
	p := Prefs{}
	applyPrefDefaults(&p)
	return p
}

// ShowTimestamps reports whether log lines should carry timestamps.
func (p Prefs) ShowTimestamps() bool {
	return p.Timestamps == nil || *p.Timestamps
}

// WithTimestamps returns a copy with the timestamp flag set explicitly.
func (p Prefs) WithTimestamps(on bool) Prefs {
	p.Timestamps = &on
	return p
}

func applyPrefDefaults(p *Prefs) {
	if p.PollIntervalMS <= 0 {
		p.PollIntervalMS = 100
	}
	if p.LogCapacity <= 0 {
		p.LogCapacity = 10000
	}
	if p.DefaultLayout == "" {
		p.DefaultLayout = "Single"
	}
}

// LoadPrefs reads prefs.yaml, falling back to defaults for a missing or
// malformed file and for any field left unset.
func (s *Store) LoadPrefs() Prefs {
	data, err := os.ReadFile(filepath.Join(s.dir, prefsFileName))
	if err != nil {
		return DefaultPrefs()
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs()
	}
	applyPrefDefaults(&p)
	return p
}

// SavePrefs writes the preferences to prefs.yaml.
func (s *Store) SavePrefs(p Prefs) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, prefsFileName), data, 0o644); err != nil {
		return fmt.Errorf("write prefs file: %w", err)
	}
	return nil
}
