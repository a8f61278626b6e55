package config

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/validate"
)

// AppID is the unique application ID; Fyne keys the preferences store by it
const AppID = "com.ytget.texture-checker"

// Resolution bounds
const (
	MinResolution = 1
	MaxResolution = 8192
)

// Settings keys for Fyne preferences
const (
	KeyLastFolder         = "last_folder"
	KeyRequiredResolution = "required_resolution"
	KeyRequiredFormat     = "required_format"
	KeyRequiredMaps       = "required_maps"
	KeyRequiredMapsSaved  = "required_maps_saved"
	KeyCustomMaps         = "custom_maps"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultResolution = 512
	DefaultFormat     = ".tga"
	DefaultLanguage   = "system"
)

// DefaultMaps are the map labels offered and required out of the box
var DefaultMaps = []string{"Albedo", "Normal", "Metallic", "Roughness", "AO"}

// ErrDuplicateMap is returned when a custom map label already exists
var ErrDuplicateMap = errors.New("map type already exists")

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

func (s *Settings) prefs() fyne.Preferences {
	return s.app.Preferences()
}

// GetLastFolder returns the last folder that was checked
func (s *Settings) GetLastFolder() string {
	return s.prefs().String(KeyLastFolder)
}

// SetLastFolder sets the last checked folder
func (s *Settings) SetLastFolder(folder string) {
	s.prefs().SetString(KeyLastFolder, strings.TrimSpace(folder))
}

// GetRequiredResolution returns the required square resolution
func (s *Settings) GetRequiredResolution() int {
	value := s.prefs().Int(KeyRequiredResolution)
	if value <= 0 {
		s.SetRequiredResolution(DefaultResolution)
		return DefaultResolution
	}
	return value
}

// SetRequiredResolution sets the required resolution, clamped to the allowed range
func (s *Settings) SetRequiredResolution(resolution int) {
	if resolution < MinResolution {
		resolution = MinResolution
	}
	if resolution > MaxResolution {
		resolution = MaxResolution
	}
	s.prefs().SetInt(KeyRequiredResolution, resolution)
}

// GetRequiredFormat returns the texture file extension, e.g. ".tga"
func (s *Settings) GetRequiredFormat() string {
	format := s.prefs().String(KeyRequiredFormat)
	if format == "" {
		s.SetRequiredFormat(DefaultFormat)
		return DefaultFormat
	}
	return format
}

// SetRequiredFormat sets the texture file extension
func (s *Settings) SetRequiredFormat(format string) {
	format = model.NormalizeExtension(format)
	if format == "" {
		format = DefaultFormat
	}
	s.prefs().SetString(KeyRequiredFormat, format)
}

// GetFormatOptions returns the texture file extensions the prober can read
func (s *Settings) GetFormatOptions() []string {
	return append([]string(nil), validate.SupportedExtensions...)
}

// GetRequiredMaps returns the labels every texture set must contain.
// Before anything is saved all known maps are required.
func (s *Settings) GetRequiredMaps() []string {
	// An empty string list does not survive a preferences reload,
	// so a saved empty selection is tracked by its own flag.
	if !s.prefs().BoolWithFallback(KeyRequiredMapsSaved, false) {
		return s.GetKnownMaps()
	}
	return append([]string{}, s.prefs().StringList(KeyRequiredMaps)...)
}

// SetRequiredMaps sets the required map labels
func (s *Settings) SetRequiredMaps(maps []string) {
	required := make([]string, 0, len(maps))
	for _, label := range model.UniqueLabels(toLabels(maps)) {
		required = append(required, string(label))
	}
	s.prefs().SetStringList(KeyRequiredMaps, required)
	s.prefs().SetBool(KeyRequiredMapsSaved, true)
}

// GetCustomMaps returns the user-added map labels
func (s *Settings) GetCustomMaps() []string {
	return append([]string{}, s.prefs().StringList(KeyCustomMaps)...)
}

// AddCustomMap adds a user-defined map label. The new label is also required.
func (s *Settings) AddCustomMap(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("map type name is empty")
	}
	if contains(s.GetKnownMaps(), label) {
		return fmt.Errorf("%w: %s", ErrDuplicateMap, label)
	}

	if s.prefs().BoolWithFallback(KeyRequiredMapsSaved, false) {
		s.SetRequiredMaps(append(s.GetRequiredMaps(), label))
	}
	s.prefs().SetStringList(KeyCustomMaps, append(s.GetCustomMaps(), label))
	return nil
}

// RemoveCustomMap removes a user-defined map label and stops requiring it
func (s *Settings) RemoveCustomMap(label string) {
	s.prefs().SetStringList(KeyCustomMaps, without(s.GetCustomMaps(), label))
	if s.prefs().BoolWithFallback(KeyRequiredMapsSaved, false) {
		s.SetRequiredMaps(without(s.GetRequiredMaps(), label))
	}
}

// GetKnownMaps returns default and custom map labels, defaults first
func (s *Settings) GetKnownMaps() []string {
	return knownMaps(s.GetCustomMaps())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"vi":     "Tiếng Việt",
	}
}

// DefaultRequirementConfig returns the requirements used before anything is configured
func DefaultRequirementConfig() model.RequirementConfig {
	return model.NewRequirementConfig(DefaultResolution, DefaultFormat, toLabels(DefaultMaps))
}

func knownMaps(custom []string) []string {
	known := append([]string(nil), DefaultMaps...)
	for _, label := range custom {
		if !contains(known, label) {
			known = append(known, label)
		}
	}
	return known
}

func toLabels(values []string) []model.MapLabel {
	labels := make([]model.MapLabel, 0, len(values))
	for _, v := range values {
		labels = append(labels, model.MapLabel(v))
	}
	return labels
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func without(values []string, value string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
