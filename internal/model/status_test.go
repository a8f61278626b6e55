package model

import "testing"

func TestValidationStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   ValidationStatus
		expected bool
	}{
		{StatusValid, true},
		{StatusInvalid, false},
		{ValidationStatus(""), false},
	}

	for _, test := range tests {
		result := test.status.IsValid()
		if result != test.expected {
			t.Errorf("ValidationStatus(%s).IsValid() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestValidationStatus_String(t *testing.T) {
	status := StatusInvalid
	expected := "invalid"
	result := status.String()

	if result != expected {
		t.Errorf("ValidationStatus.String() = %s, expected %s", result, expected)
	}
}

func TestValidationStatus_Icon(t *testing.T) {
	if StatusValid.Icon() != "✅" {
		t.Errorf("Expected valid icon, got %s", StatusValid.Icon())
	}
	if StatusInvalid.Icon() != "❌" {
		t.Errorf("Expected invalid icon, got %s", StatusInvalid.Icon())
	}
}
