package ui

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/texture-checker/internal/model"
)

func TestResultLines(t *testing.T) {
	lines := resultLines(sampleReport("/textures").Results)

	expectedKinds := []lineKind{lineValid, lineInvalid, lineInvalid, lineDetail}
	if len(lines) != len(expectedKinds) {
		t.Fatalf("Expected %d lines, got %d", len(expectedKinds), len(lines))
	}
	for i, kind := range expectedKinds {
		if lines[i].Kind != kind {
			t.Errorf("Line %d: expected kind %d, got %d", i, kind, lines[i].Kind)
		}
	}
}

func TestResultRow_Styles(t *testing.T) {
	test.NewApp()

	tests := []struct {
		line       resultLine
		importance widget.Importance
	}{
		{resultLine{Text: "✅ Wall: All requirements met", Kind: lineValid}, widget.SuccessImportance},
		{resultLine{Text: "❌ Rock: Missing maps: Normal", Kind: lineInvalid}, widget.DangerImportance},
		{resultLine{Text: "  ⚠ Normal: Error loading file", Kind: lineDetail}, widget.WarningImportance},
	}

	row := NewResultRow()
	for _, tt := range tests {
		row.SetLine(tt.line)
		if row.Text() != tt.line.Text {
			t.Errorf("Expected text %q, got %q", tt.line.Text, row.Text())
		}
		if row.label.Importance != tt.importance {
			t.Errorf("Line %q: expected importance %v, got %v", tt.line.Text, tt.importance, row.label.Importance)
		}
	}
}

func TestResultsView_Summary(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	rv := NewResultsView(l)

	if rv.SummaryText() != l.GetText(KeyResultsPlaceholder) {
		t.Errorf("Expected placeholder, got %s", rv.SummaryText())
	}

	req := model.NewRequirementConfig(512, ".tga", nil)
	rv.SetReport(model.NewReport("/empty", req, nil))
	if rv.SummaryText() != l.GetText(KeyNoTextureSets) {
		t.Errorf("Expected no texture sets message, got %s", rv.SummaryText())
	}

	rv.SetReport(sampleReport("/textures"))
	if len(rv.Lines()) != 4 {
		t.Errorf("Expected 4 lines, got %v", rv.Lines())
	}

	rv.Clear()
	if rv.Report() != nil || len(rv.Lines()) != 0 {
		t.Error("Clear should drop the report and its lines")
	}
}

func TestMapChecklist(t *testing.T) {
	test.NewApp()

	mc := NewMapChecklist([]string{"BaseColor", "Normal", "AO"}, []string{"Normal", "AO"})

	if !reflect.DeepEqual(mc.Selected(), []string{"Normal", "AO"}) {
		t.Errorf("Unexpected selection %v", mc.Selected())
	}
	if mc.checks["BaseColor"].Text != "Base Color" {
		t.Errorf("Expected display name 'Base Color', got %s", mc.checks["BaseColor"].Text)
	}

	changed := 0
	mc.SetOnChanged(func() { changed++ })
	test.Tap(mc.checks["BaseColor"])
	if changed != 1 {
		t.Errorf("Expected one change notification, got %d", changed)
	}

	mc.Add("Height", true)
	mc.Add("Height", false) // ignored
	if !reflect.DeepEqual(mc.Selected(), []string{"BaseColor", "Normal", "AO", "Height"}) {
		t.Errorf("Unexpected selection %v", mc.Selected())
	}

	mc.Remove("Normal")
	if !reflect.DeepEqual(mc.Labels(), []string{"BaseColor", "AO", "Height"}) {
		t.Errorf("Unexpected labels %v", mc.Labels())
	}
}
