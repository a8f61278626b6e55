package model

// ValidationStatus represents the verdict for a single texture set
type ValidationStatus string

const (
	// StatusValid means every required map is present and correctly sized
	StatusValid ValidationStatus = "valid"

	// StatusInvalid means maps are missing or at least one map has issues
	StatusInvalid ValidationStatus = "invalid"
)

// String returns the string representation of ValidationStatus
func (vs ValidationStatus) String() string {
	return string(vs)
}

// IsValid returns true if the status is StatusValid
func (vs ValidationStatus) IsValid() bool {
	return vs == StatusValid
}

// Icon returns the marker used when a result is rendered as a list line
func (vs ValidationStatus) Icon() string {
	if vs.IsValid() {
		return "✅"
	}
	return "❌"
}
