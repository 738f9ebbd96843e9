// Package settings manages persistent user settings for sonicmon.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds persistent user preferences. Command-line flags
// override them; they override the built-in defaults.
type Settings struct {
	// RedisAddr is the host:port of the SONiC Redis instance
	RedisAddr string `yaml:"redis_addr,omitempty"`

	// Screen is the view shown at startup (main, interface or lldp)
	Screen string `yaml:"screen,omitempty"`

	// Interval is the refresh interval in seconds
	Interval float64 `yaml:"interval,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sonicmon_settings.yaml"
	}
	return filepath.Join(home, ".sonicmon", "settings.yaml")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path. A missing file yields
// empty settings, not an error.
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Interval < 0 {
		return nil, fmt.Errorf("parsing %s: interval must be positive", path)
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path, creating parent
// directories as needed.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
