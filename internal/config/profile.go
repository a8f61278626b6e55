package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/texture-checker/internal/model"
)

// Profile is a named set of texture requirements shared as a YAML file:
//
//	name: hero-props
//	resolution: 2048
//	extension: .tga
//	maps: [BaseColor, Normal, RM]
type Profile struct {
	Name       string   `yaml:"name"`
	Resolution int      `yaml:"resolution"`
	Extension  string   `yaml:"extension"`
	Maps       []string `yaml:"maps"`
}

// LoadProfile reads and validates a requirement profile
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if p.Resolution < 0 {
		return Profile{}, fmt.Errorf("invalid %s: resolution must not be negative", path)
	}

	return p, nil
}

// Apply overlays the profile on base. Only values set in the profile win.
func (p Profile) Apply(base model.RequirementConfig) model.RequirementConfig {
	result := base
	if p.Resolution > 0 {
		result.Resolution = p.Resolution
	}
	if p.Extension != "" {
		result.Extension = p.Extension
	}
	if p.Maps != nil {
		result.RequiredMaps = toLabels(p.Maps)
	}
	return model.NewRequirementConfig(result.Resolution, result.Extension, result.RequiredMaps)
}
