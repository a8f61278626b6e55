package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/texture-checker/internal/model"
)

func TestParseTextureName(t *testing.T) {
	tests := []struct {
		name      string
		wantKey   model.TextureSetKey
		wantLabel model.MapLabel
	}{
		{"Wall_BaseColor.tga", "Wall", "BaseColor"},
		{"A_B_Map.ext", "A_B", "Map"},
		{"Rock_AO.final.tga", "Rock", "AO"},
		{"Wall.tga", "Wall", model.UnknownLabel},
		{"Wall.v2.tga", "Wall", model.UnknownLabel},
		{"Wall", "Wall", model.UnknownLabel},
		{"Wall_.tga", "Wall", ""},
		{"_Normal.tga", "", "Normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, label := ParseTextureName(tt.name)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestOrganize_GroupsByKey(t *testing.T) {
	sets := Organize([]model.TextureFile{
		"/tex/Wall_BaseColor.tga",
		"/tex/Wall_Normal.tga",
		"/tex/props/Door_Normal.tga",
		"/tex/Logo.tga",
	})

	require.Equal(t, 3, sets.Len())
	assert.Equal(t, []model.TextureSetKey{"Wall", "Door", "Logo"}, sets.Keys())

	wall, ok := sets.Get("Wall")
	require.True(t, ok)
	assert.Equal(t, []model.MapLabel{"BaseColor", "Normal"}, wall.Labels())

	logo, ok := sets.Get("Logo")
	require.True(t, ok)
	file, ok := logo.Get(model.UnknownLabel)
	require.True(t, ok)
	assert.Equal(t, model.TextureFile("/tex/Logo.tga"), file)
}

func TestOrganize_LastFileWins(t *testing.T) {
	sets := Organize([]model.TextureFile{
		"/tex/a/Wall_Normal.tga",
		"/tex/b/Wall_Normal.tga",
	})

	wall, ok := sets.Get("Wall")
	require.True(t, ok)
	assert.Equal(t, 1, wall.Len())

	file, _ := wall.Get("Normal")
	assert.Equal(t, model.TextureFile("/tex/b/Wall_Normal.tga"), file)
}

func TestOrganize_Empty(t *testing.T) {
	sets := Organize(nil)
	assert.Equal(t, 0, sets.Len())
	assert.Empty(t, sets.Keys())
}
