// Package project persists generation settings as JSON so a run can be
// repeated or shared.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/rvegen/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.rvegen/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".rvegen")
}

// DefaultSettingsPath returns the default path for the settings file.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultConfigDir(), "settings.json")
}

// SaveSettings persists generation settings to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveSettings(path string, settings model.GenerationSettings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads generation settings from the given path.
// If the file does not exist, it returns DefaultSettings with no error.
func LoadSettings(path string) (model.GenerationSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return model.GenerationSettings{}, err
	}
	var settings model.GenerationSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.GenerationSettings{}, err
	}
	return settings, nil
}
