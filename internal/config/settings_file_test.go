package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ytget/texture-checker/internal/model"
)

func writeSettingsFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFileName)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	return path
}

func TestReadRequirementConfig(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected model.RequirementConfig
	}{
		{
			name:     "empty store uses defaults",
			data:     `{}`,
			expected: DefaultRequirementConfig(),
		},
		{
			name: "saved values",
			data: `{"app_language":"ru","required_resolution":1024,"required_format":".png",` +
				`"required_maps":["BaseColor","Normal"],"required_maps_saved":true}`,
			expected: model.NewRequirementConfig(1024, ".png", []model.MapLabel{"BaseColor", "Normal"}),
		},
		{
			name:     "saved empty selection requires nothing",
			data:     `{"required_maps":[],"required_maps_saved":true}`,
			expected: model.NewRequirementConfig(DefaultResolution, DefaultFormat, nil),
		},
		{
			name: "unsaved selection requires all known maps",
			data: `{"custom_maps":["Height"]}`,
			expected: model.NewRequirementConfig(DefaultResolution, DefaultFormat,
				[]model.MapLabel{"Albedo", "Normal", "Metallic", "Roughness", "AO", "Height"}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req, err := ReadRequirementConfig(writeSettingsFile(t, test.data))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(req, test.expected) {
				t.Errorf("Expected %+v, got %+v", test.expected, req)
			}
		})
	}
}

func TestReadRequirementConfig_Errors(t *testing.T) {
	if _, err := ReadRequirementConfig(filepath.Join(t.TempDir(), SettingsFileName)); err == nil {
		t.Error("Expected error for a missing file")
	}

	if _, err := ReadRequirementConfig(writeSettingsFile(t, "{not json")); err == nil {
		t.Error("Expected error for a corrupt file")
	}
}
