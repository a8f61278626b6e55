package validate

import (
	"path/filepath"
	"strings"

	"github.com/ytget/texture-checker/internal/model"
)

// NameSeparator splits a texture file name into set key and map label
const NameSeparator = "_"

// ParseTextureName derives the set key and map label from a file's base name.
// "Wall_Brick_Normal.tga" gives ("Wall_Brick", "Normal"); a name without a
// separator gives (name up to the first ".", UnknownLabel).
func ParseTextureName(name string) (model.TextureSetKey, model.MapLabel) {
	parts := strings.Split(name, NameSeparator)
	if len(parts) < 2 {
		return model.TextureSetKey(stripExtension(name)), model.UnknownLabel
	}

	key := strings.Join(parts[:len(parts)-1], NameSeparator)
	label := stripExtension(parts[len(parts)-1])
	return model.TextureSetKey(key), model.MapLabel(label)
}

// Organize groups files into texture sets. When two files produce the same
// key and label the later one replaces the earlier one.
func Organize(files []model.TextureFile) *model.TextureSets {
	sets := model.NewTextureSets()
	for _, file := range files {
		key, label := ParseTextureName(filepath.Base(string(file)))
		sets.Add(key, label, file)
	}
	return sets
}

// stripExtension returns the part of name before the first "."
func stripExtension(name string) string {
	if idx := strings.Index(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}
