package validate

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/platform"
)

// ErrInvalidFolder is returned when the folder to scan is missing or not a directory
var ErrInvalidFolder = errors.New("invalid texture folder")

// Service handles folder validation runs
type Service struct {
	prober     Prober
	mu         sync.RWMutex
	onProgress func(done, total int) // callback for UI updates
}

// NewService creates a new validation service. A nil prober selects ImageProber.
func NewService(prober Prober) *Service {
	if prober == nil {
		prober = NewImageProber()
	}
	return &Service{prober: prober}
}

// SetProgressCallback sets the callback invoked after each texture set is checked
func (s *Service) SetProgressCallback(callback func(done, total int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onProgress = callback
}

// ListSets discovers files with ext under folder and groups them into sets
func (s *Service) ListSets(folder string, ext string) (*model.TextureSets, error) {
	if !platform.IsDirectory(folder) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
	}

	paths, err := platform.CollectFiles(folder, model.NormalizeExtension(ext))
	if err != nil {
		return nil, err
	}

	files := make([]model.TextureFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, model.TextureFile(path))
	}
	return Organize(files), nil
}

// ValidateFolder scans folder and validates every texture set against req
func (s *Service) ValidateFolder(folder string, req model.RequirementConfig) (*model.Report, error) {
	req = model.NewRequirementConfig(req.Resolution, req.Extension, req.RequiredMaps)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	log.Printf("Validating %s (resolution=%d, ext=%s, maps=%v)", folder, req.Resolution, req.Extension, req.RequiredMaps)

	sets, err := s.ListSets(folder, req.Extension)
	if err != nil {
		return nil, err
	}

	total := sets.Len()
	results := make([]model.ValidationResult, 0, total)
	for i, set := range sets.All() {
		results = append(results, ValidateSet(set, req.RequiredMaps, req.Resolution, s.prober))
		s.notifyProgress(i+1, total)
	}

	report := model.NewReport(folder, req, results)
	summary := report.Summary()
	log.Printf("Validated %d texture set(s) in %s: %d valid, %d invalid",
		summary.Total, time.Since(started).Round(time.Millisecond), summary.Valid, summary.Invalid)

	return report, nil
}

// notifyProgress calls the progress callback if set
func (s *Service) notifyProgress(done, total int) {
	s.mu.RLock()
	callback := s.onProgress
	s.mu.RUnlock()

	if callback != nil {
		callback(done, total)
	}
}
