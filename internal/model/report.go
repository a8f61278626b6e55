package model

import (
	"time"

	"github.com/google/uuid"
)

// Report wraps the results of one folder validation run
type Report struct {
	ID           string             `json:"id" yaml:"id"`
	Folder       string             `json:"folder" yaml:"folder"`
	Requirements RequirementConfig  `json:"requirements" yaml:"requirements"`
	CreatedAt    time.Time          `json:"created_at" yaml:"created_at"`
	Results      []ValidationResult `json:"results" yaml:"results"`
}

// Summary counts results by status
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// NewReport creates a report for folder with a fresh ID
func NewReport(folder string, req RequirementConfig, results []ValidationResult) *Report {
	if results == nil {
		results = make([]ValidationResult, 0)
	}
	return &Report{
		ID:           "report-" + uuid.New().String(),
		Folder:       folder,
		Requirements: req,
		CreatedAt:    time.Now(),
		Results:      results,
	}
}

// Summary returns the number of valid and invalid sets
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Results)}
	for _, result := range r.Results {
		if result.Status.IsValid() {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}

// AllValid reports whether every set passed
func (r *Report) AllValid() bool {
	return r.Summary().Invalid == 0
}
