package validate

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/texture-checker/internal/model"
)

type probeResult struct {
	width, height int
	err           error
}

// fakeProber answers by file base name and records every probed path
type fakeProber struct {
	results map[string]probeResult
	probed  []string
}

func (p *fakeProber) Probe(path string) (int, int, error) {
	p.probed = append(p.probed, path)
	r, ok := p.results[filepath.Base(path)]
	if !ok {
		return 0, 0, errors.New("no such file")
	}
	return r.width, r.height, r.err
}

func organizeNames(names ...string) *model.TextureSets {
	files := make([]model.TextureFile, 0, len(names))
	for _, name := range names {
		files = append(files, model.TextureFile(filepath.Join("/textures", name)))
	}
	return Organize(files)
}

func TestValidate_WrongSize(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Wall_BaseColor.tga": {512, 512, nil},
		"Wall_Normal.tga":    {256, 256, nil},
	}}
	sets := organizeNames("Wall_BaseColor.tga", "Wall_Normal.tga")

	results := Validate(sets, []model.MapLabel{"BaseColor", "Normal"}, 512, prober)

	require.Len(t, results, 1)
	assert.Equal(t, model.TextureSetKey("Wall"), results[0].TextureSet)
	assert.Equal(t, model.StatusInvalid, results[0].Status)
	assert.Equal(t, "Some maps have issues", results[0].Message)
	assert.Equal(t, []string{"Normal: Incorrect size 256x256 (expected 512x512)"}, results[0].Details)
}

func TestValidate_MissingMapsShortCircuit(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Rock_BaseColor.tga": {1, 1, nil},
		"Rock_AO.tga":        {1, 1, nil},
	}}
	sets := organizeNames("Rock_BaseColor.tga", "Rock_AO.tga")

	results := Validate(sets, []model.MapLabel{"BaseColor", "Normal", "AO"}, 512, prober)

	require.Len(t, results, 1)
	assert.Equal(t, model.StatusInvalid, results[0].Status)
	assert.Equal(t, "Missing maps: Normal", results[0].Message)
	assert.Nil(t, results[0].Details)
	assert.Empty(t, prober.probed, "files of a set with missing maps must not be opened")
}

func TestValidate_MissingMapsKeepRequiredOrder(t *testing.T) {
	prober := &fakeProber{}
	sets := organizeNames("Crate_BaseColor.tga")

	results := Validate(sets, []model.MapLabel{"Roughness", "BaseColor", "AO", "Normal"}, 512, prober)

	require.Len(t, results, 1)
	assert.Equal(t, "Missing maps: Roughness, AO, Normal", results[0].Message)
}

func TestValidate_DecodeErrorIsLocal(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Door_BaseColor.tga": {512, 512, nil},
		"Door_Normal.tga":    {0, 0, errors.New("unexpected EOF")},
		"Door_AO.tga":        {512, 512, nil},
		"Wall_BaseColor.tga": {512, 512, nil},
		"Wall_Normal.tga":    {512, 512, nil},
		"Wall_AO.tga":        {512, 512, nil},
	}}
	sets := organizeNames(
		"Door_BaseColor.tga", "Door_Normal.tga", "Door_AO.tga",
		"Wall_BaseColor.tga", "Wall_Normal.tga", "Wall_AO.tga",
	)

	results := Validate(sets, []model.MapLabel{"BaseColor", "Normal", "AO"}, 512, prober)

	require.Len(t, results, 2)

	door := results[0]
	assert.Equal(t, model.TextureSetKey("Door"), door.TextureSet)
	assert.Equal(t, model.StatusInvalid, door.Status)
	assert.Equal(t, "Some maps have issues", door.Message)
	require.Len(t, door.Details, 1)
	assert.Equal(t, "Normal: Error loading file - unexpected EOF", door.Details[0])

	wall := results[1]
	assert.Equal(t, model.StatusValid, wall.Status)
	assert.Equal(t, "All requirements met", wall.Message)
	assert.Nil(t, wall.Details)

	assert.Len(t, prober.probed, 6, "every present map is probed")
}

func TestValidate_AllValid(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Wall_BaseColor.tga": {1024, 1024, nil},
		"Wall_Normal.tga":    {1024, 1024, nil},
	}}
	sets := organizeNames("Wall_BaseColor.tga", "Wall_Normal.tga")

	results := Validate(sets, []model.MapLabel{"BaseColor", "Normal"}, 1024, prober)

	require.Len(t, results, 1)
	assert.True(t, results[0].Status.IsValid())
	assert.Equal(t, "All requirements met", results[0].Message)
}

func TestValidate_NonSquareFails(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Wall_BaseColor.tga": {512, 256, nil},
	}}
	sets := organizeNames("Wall_BaseColor.tga")

	results := Validate(sets, []model.MapLabel{"BaseColor"}, 512, prober)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"BaseColor: Incorrect size 512x256 (expected 512x512)"}, results[0].Details)
}

func TestValidate_NonRequiredMapIssuesSurface(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Wall_BaseColor.tga": {512, 512, nil},
		"Wall_Emissive.tga":  {128, 128, nil},
	}}
	sets := organizeNames("Wall_BaseColor.tga", "Wall_Emissive.tga")

	results := Validate(sets, []model.MapLabel{"BaseColor"}, 512, prober)

	require.Len(t, results, 1)
	assert.Equal(t, model.StatusInvalid, results[0].Status)
	assert.Equal(t, []string{"Emissive: Incorrect size 128x128 (expected 512x512)"}, results[0].Details)
}

func TestValidate_NoRequiredMaps(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Logo.tga": {64, 64, nil},
	}}
	sets := organizeNames("Logo.tga")

	results := Validate(sets, nil, 64, prober)

	require.Len(t, results, 1)
	assert.Equal(t, model.TextureSetKey("Logo"), results[0].TextureSet)
	assert.Equal(t, model.StatusValid, results[0].Status)
}

func TestValidate_Idempotent(t *testing.T) {
	prober := &fakeProber{results: map[string]probeResult{
		"Wall_BaseColor.tga": {512, 512, nil},
		"Wall_Normal.tga":    {256, 256, nil},
		"Rock_AO.tga":        {512, 512, nil},
	}}
	required := []model.MapLabel{"BaseColor", "Normal"}

	first := Validate(organizeNames("Wall_BaseColor.tga", "Wall_Normal.tga", "Rock_AO.tga"), required, 512, prober)
	second := Validate(organizeNames("Wall_BaseColor.tga", "Wall_Normal.tga", "Rock_AO.tga"), required, 512, prober)

	assert.Equal(t, first, second)
}
