package model

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// UnknownLabel is assigned to files whose name has no "_" separated map suffix
const UnknownLabel MapLabel = "Unknown"

// TextureFile is a path to a discovered texture asset
type TextureFile string

// TextureSetKey identifies a logical texture set (e.g. "Wall" for Wall_Normal.tga)
type TextureSetKey string

// MapLabel identifies the role of a texture within a set (e.g. "Normal")
type MapLabel string

// DisplayName splits CamelCase labels into words: "BaseColor" -> "Base Color"
func (l MapLabel) DisplayName() string {
	words := camelcase.Split(string(l))
	if len(words) == 0 {
		return string(l)
	}
	return strings.Join(words, " ")
}

// TextureSet maps each label of one set to its file. Labels keep the order
// in which they were first seen.
type TextureSet struct {
	Key    TextureSetKey
	maps   map[MapLabel]TextureFile
	labels []MapLabel
}

// NewTextureSet creates an empty texture set for key
func NewTextureSet(key TextureSetKey) *TextureSet {
	return &TextureSet{
		Key:  key,
		maps: make(map[MapLabel]TextureFile),
	}
}

// Put stores file under label. A file already stored under label is replaced
// and the label keeps its original position.
func (ts *TextureSet) Put(label MapLabel, file TextureFile) {
	if _, exists := ts.maps[label]; !exists {
		ts.labels = append(ts.labels, label)
	}
	ts.maps[label] = file
}

// Get returns the file stored under label
func (ts *TextureSet) Get(label MapLabel) (TextureFile, bool) {
	file, ok := ts.maps[label]
	return file, ok
}

// Has reports whether the set contains label
func (ts *TextureSet) Has(label MapLabel) bool {
	_, ok := ts.maps[label]
	return ok
}

// Labels returns the labels of the set in first-seen order
func (ts *TextureSet) Labels() []MapLabel {
	labels := make([]MapLabel, len(ts.labels))
	copy(labels, ts.labels)
	return labels
}

// Len returns the number of maps in the set
func (ts *TextureSet) Len() int {
	return len(ts.labels)
}

// TextureSets is an ordered collection of texture sets, keyed by TextureSetKey
type TextureSets struct {
	sets  []*TextureSet
	index map[TextureSetKey]*TextureSet
}

// NewTextureSets creates an empty collection
func NewTextureSets() *TextureSets {
	return &TextureSets{
		index: make(map[TextureSetKey]*TextureSet),
	}
}

// Add stores file in the set for key under label, creating the set on first use
func (s *TextureSets) Add(key TextureSetKey, label MapLabel, file TextureFile) {
	set, exists := s.index[key]
	if !exists {
		set = NewTextureSet(key)
		s.index[key] = set
		s.sets = append(s.sets, set)
	}
	set.Put(label, file)
}

// Get returns the set for key
func (s *TextureSets) Get(key TextureSetKey) (*TextureSet, bool) {
	set, ok := s.index[key]
	return set, ok
}

// All returns every set in first-seen order
func (s *TextureSets) All() []*TextureSet {
	sets := make([]*TextureSet, len(s.sets))
	copy(sets, s.sets)
	return sets
}

// Keys returns the set keys in first-seen order
func (s *TextureSets) Keys() []TextureSetKey {
	keys := make([]TextureSetKey, 0, len(s.sets))
	for _, set := range s.sets {
		keys = append(keys, set.Key)
	}
	return keys
}

// Len returns the number of sets
func (s *TextureSets) Len() int {
	return len(s.sets)
}

// RequirementConfig holds what every texture set must satisfy in one run
type RequirementConfig struct {
	Resolution   int        `json:"resolution" yaml:"resolution"`
	Extension    string     `json:"extension" yaml:"extension"`
	RequiredMaps []MapLabel `json:"required_maps" yaml:"required_maps"`
}

// NewRequirementConfig builds a config with a normalized extension and
// deduplicated labels
func NewRequirementConfig(resolution int, extension string, maps []MapLabel) RequirementConfig {
	return RequirementConfig{
		Resolution:   resolution,
		Extension:    NormalizeExtension(extension),
		RequiredMaps: UniqueLabels(maps),
	}
}

// Validate checks that the config can drive a validation run
func (rc RequirementConfig) Validate() error {
	if rc.Resolution <= 0 {
		return fmt.Errorf("required resolution must be positive, got %d", rc.Resolution)
	}
	if NormalizeExtension(rc.Extension) == "" {
		return fmt.Errorf("required file extension is empty")
	}
	return nil
}

// NormalizeExtension trims the extension and makes sure it starts with "."
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// UniqueLabels drops empty and repeated labels, keeping the first occurrence
func UniqueLabels(labels []MapLabel) []MapLabel {
	seen := make(map[MapLabel]bool, len(labels))
	unique := make([]MapLabel, 0, len(labels))
	for _, label := range labels {
		label = MapLabel(strings.TrimSpace(string(label)))
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		unique = append(unique, label)
	}
	return unique
}

// ValidationResult is the verdict for one texture set
type ValidationResult struct {
	TextureSet TextureSetKey    `json:"texture_set" yaml:"texture_set"`
	Status     ValidationStatus `json:"status" yaml:"status"`
	Message    string           `json:"message" yaml:"message"`
	Details    []string         `json:"details,omitempty" yaml:"details,omitempty"`
}

// Lines renders the result the way the results list shows it: one line for
// the set followed by one indented line per diagnostic
func (vr ValidationResult) Lines() []string {
	lines := []string{fmt.Sprintf("%s %s: %s", vr.Status.Icon(), vr.TextureSet, vr.Message)}
	for _, detail := range vr.Details {
		lines = append(lines, "  ⚠ "+detail)
	}
	return lines
}
