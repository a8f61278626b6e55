package validate

import (
	"fmt"
	"strings"

	"github.com/ytget/texture-checker/internal/model"
)

// Result messages
const (
	MessageMissingMaps = "Missing maps: "
	MessageHasIssues   = "Some maps have issues"
	MessageAllMet      = "All requirements met"
)

// Validate checks every set against the required labels and resolution.
// Results follow the order of sets.
func Validate(sets *model.TextureSets, required []model.MapLabel, resolution int, prober Prober) []model.ValidationResult {
	results := make([]model.ValidationResult, 0, sets.Len())
	for _, set := range sets.All() {
		results = append(results, ValidateSet(set, required, resolution, prober))
	}
	return results
}

// ValidateSet checks a single texture set. A set missing any required map is
// rejected without opening its files. Otherwise every present map is probed,
// required or not, and each size mismatch or decode failure becomes one
// diagnostic line.
func ValidateSet(set *model.TextureSet, required []model.MapLabel, resolution int, prober Prober) model.ValidationResult {
	if missing := missingLabels(set, required); len(missing) > 0 {
		return model.ValidationResult{
			TextureSet: set.Key,
			Status:     model.StatusInvalid,
			Message:    MessageMissingMaps + strings.Join(missing, ", "),
		}
	}

	var details []string
	for _, label := range set.Labels() {
		file, _ := set.Get(label)
		width, height, err := prober.Probe(string(file))
		if err != nil {
			details = append(details, fmt.Sprintf("%s: Error loading file - %v", label, err))
			continue
		}
		if width != resolution || height != resolution {
			details = append(details, fmt.Sprintf("%s: Incorrect size %dx%d (expected %dx%d)",
				label, width, height, resolution, resolution))
		}
	}

	if len(details) > 0 {
		return model.ValidationResult{
			TextureSet: set.Key,
			Status:     model.StatusInvalid,
			Message:    MessageHasIssues,
			Details:    details,
		}
	}

	return model.ValidationResult{
		TextureSet: set.Key,
		Status:     model.StatusValid,
		Message:    MessageAllMet,
	}
}

// missingLabels returns required labels absent from set, in required order
func missingLabels(set *model.TextureSet, required []model.MapLabel) []string {
	var missing []string
	for _, label := range required {
		if !set.Has(label) {
			missing = append(missing, string(label))
		}
	}
	return missing
}
