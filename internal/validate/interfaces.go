package validate

import (
	"github.com/ytget/texture-checker/internal/model"
)

// Checker defines the interface for the folder validation service.
type Checker interface {
	SetProgressCallback(func(done, total int))
	ValidateFolder(folder string, req model.RequirementConfig) (*model.Report, error)
	ListSets(folder string, ext string) (*model.TextureSets, error)
}

// Prober reads the pixel dimensions of an image file.
type Prober interface {
	Probe(path string) (width, height int, err error)
}
