package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/platform"
)

// SettingsFileName is the file Fyne writes preferences to
const SettingsFileName = "preferences.json"

// settingsFile mirrors the keys Settings stores in Fyne preferences
type settingsFile struct {
	RequiredResolution int      `json:"required_resolution"`
	RequiredFormat     string   `json:"required_format"`
	RequiredMaps       []string `json:"required_maps"`
	RequiredMapsSaved  bool     `json:"required_maps_saved"`
	CustomMaps         []string `json:"custom_maps"`
}

// DefaultSettingsPath returns the preferences file the GUI writes to
func DefaultSettingsPath() (string, error) {
	dir, err := platform.GetAppConfigDir(AppID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// ReadRequirementConfig reads the requirements saved by the GUI from a
// preferences file without starting a Fyne app. Unset values fall back
// to the same defaults Settings uses.
func ReadRequirementConfig(path string) (model.RequirementConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.RequirementConfig{}, err
	}

	var data settingsFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.RequirementConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	resolution := data.RequiredResolution
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	format := data.RequiredFormat
	if format == "" {
		format = DefaultFormat
	}
	maps := knownMaps(data.CustomMaps)
	if data.RequiredMapsSaved {
		maps = data.RequiredMaps
	}

	return model.NewRequirementConfig(resolution, format, toLabels(maps)), nil
}
