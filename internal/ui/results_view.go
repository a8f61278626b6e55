package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/texture-checker/internal/model"
)

// ResultsView shows the lines of the last report and a summary under them
type ResultsView struct {
	localization *Localization

	report *model.Report
	lines  []resultLine

	// UI components
	container *fyne.Container
	list      *widget.List
	summary   *widget.Label
}

// NewResultsView creates an empty results view
func NewResultsView(localization *Localization) *ResultsView {
	rv := &ResultsView{localization: localization}
	rv.createUI()
	return rv
}

// createUI creates the list and the summary label
func (rv *ResultsView) createUI() {
	rv.list = widget.NewList(
		func() int {
			return len(rv.lines)
		},
		func() fyne.CanvasObject {
			return NewResultRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(rv.lines) {
				return
			}
			obj.(*ResultRow).SetLine(rv.lines[id])
		},
	)

	rv.summary = widget.NewLabel(rv.localization.GetText(KeyResultsPlaceholder))
	rv.summary.TextStyle = fyne.TextStyle{Italic: true}

	rv.container = container.NewBorder(nil, rv.summary, nil, nil, rv.list)
}

// Container returns the root canvas object of the view
func (rv *ResultsView) Container() *fyne.Container {
	return rv.container
}

// SetReport replaces the displayed results. Must run on the UI goroutine.
func (rv *ResultsView) SetReport(report *model.Report) {
	rv.report = report
	rv.lines = nil
	if report != nil {
		rv.lines = resultLines(report.Results)
	}
	rv.list.Refresh()
	rv.refreshSummary()
}

// Clear removes all results
func (rv *ResultsView) Clear() {
	rv.SetReport(nil)
}

// Report returns the displayed report, nil before the first run
func (rv *ResultsView) Report() *model.Report {
	return rv.report
}

// Lines returns the displayed lines as text
func (rv *ResultsView) Lines() []string {
	texts := make([]string, 0, len(rv.lines))
	for _, line := range rv.lines {
		texts = append(texts, line.Text)
	}
	return texts
}

// SummaryText returns the summary label text
func (rv *ResultsView) SummaryText() string {
	return rv.summary.Text
}

// refreshSummary re-renders the summary in the current language
func (rv *ResultsView) refreshSummary() {
	switch {
	case rv.report == nil:
		rv.summary.SetText(rv.localization.GetText(KeyResultsPlaceholder))
	case len(rv.report.Results) == 0:
		rv.summary.SetText(rv.localization.GetText(KeyNoTextureSets))
	default:
		s := rv.report.Summary()
		rv.summary.SetText(rv.localization.Format(KeySummary, s.Total, s.Valid, s.Invalid))
	}
}
