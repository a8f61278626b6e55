package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/texture-checker/internal/config"
	"github.com/ytget/texture-checker/internal/model"
)

// guiSettingsValue makes --settings read the desktop app's preferences file
const guiSettingsValue = "gui"

// requirementFlags are the flags shared by commands that need requirements.
// Precedence: explicit flags, then --profile, then --settings, then defaults.
type requirementFlags struct {
	settingsPath string
	profilePath  string
	resolution   int
	ext          string
	maps         string
}

func (f *requirementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.settingsPath, "settings", "", `Preferences file to take default requirements from ("gui" for the desktop app's own)`)
	cmd.Flags().StringVar(&f.profilePath, "profile", "", "YAML requirement profile")
	cmd.Flags().IntVar(&f.resolution, "resolution", config.DefaultResolution, "Required square resolution in pixels")
	cmd.Flags().StringVar(&f.ext, "ext", config.DefaultFormat, "Texture file extension")
	cmd.Flags().StringVar(&f.maps, "maps", strings.Join(config.DefaultMaps, ","), "Comma-separated required map labels")
}

func (f *requirementFlags) resolve(cmd *cobra.Command) (model.RequirementConfig, error) {
	req := config.DefaultRequirementConfig()

	if f.settingsPath != "" {
		path := f.settingsPath
		if path == guiSettingsValue {
			defaultPath, err := config.DefaultSettingsPath()
			if err != nil {
				return model.RequirementConfig{}, fmt.Errorf("locating settings: %w", err)
			}
			path = defaultPath
		}
		settingsReq, err := config.ReadRequirementConfig(path)
		if err != nil {
			return model.RequirementConfig{}, fmt.Errorf("loading settings: %w", err)
		}
		req = settingsReq
	}

	if f.profilePath != "" {
		profile, err := config.LoadProfile(f.profilePath)
		if err != nil {
			return model.RequirementConfig{}, fmt.Errorf("loading profile: %w", err)
		}
		req = profile.Apply(req)
	}

	if cmd.Flags().Changed("resolution") {
		req.Resolution = f.resolution
	}
	if cmd.Flags().Changed("ext") {
		req.Extension = f.ext
	}
	if cmd.Flags().Changed("maps") {
		req.RequiredMaps = parseMaps(f.maps)
	}

	req = model.NewRequirementConfig(req.Resolution, req.Extension, req.RequiredMaps)
	if err := req.Validate(); err != nil {
		return model.RequirementConfig{}, err
	}
	return req, nil
}

func parseMaps(value string) []model.MapLabel {
	var labels []model.MapLabel
	for _, part := range strings.Split(value, ",") {
		labels = append(labels, model.MapLabel(part))
	}
	return model.UniqueLabels(labels)
}
