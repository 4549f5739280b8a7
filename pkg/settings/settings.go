// Package settings manages persistent user settings for the evpnscan CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/evpn-tools/evpnscan/pkg/report"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultRoster is the roster file to use when none is given
	DefaultRoster string `json:"default_roster,omitempty"`

	// Parallel overrides the default device polling concurrency
	Parallel int `json:"parallel,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "evpnscan_settings.json"
	}
	return filepath.Join(home, ".evpnscan", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetRoster sets the default roster file
func (s *Settings) SetRoster(path string) {
	s.DefaultRoster = path
}

// SetParallel sets the default polling concurrency
func (s *Settings) SetParallel(n int) {
	s.Parallel = n
}

// GetParallel returns the polling concurrency (with fallback)
func (s *Settings) GetParallel() int {
	if s.Parallel > 0 {
		return s.Parallel
	}
	return report.DefaultParallel
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
