package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/texture-checker/internal/model"
)

// lineKind tells the row how to style a results line
type lineKind int

const (
	lineValid lineKind = iota
	lineInvalid
	lineDetail
)

// resultLine is one rendered line of the results list
type resultLine struct {
	Text string
	Kind lineKind
}

// resultLines flattens results into list lines: one per set, followed by
// one indented line per diagnostic
func resultLines(results []model.ValidationResult) []resultLine {
	var lines []resultLine
	for _, result := range results {
		for i, text := range result.Lines() {
			kind := lineDetail
			if i == 0 {
				kind = lineInvalid
				if result.Status.IsValid() {
					kind = lineValid
				}
			}
			lines = append(lines, resultLine{Text: text, Kind: kind})
		}
	}
	return lines
}

// ResultRow displays one line of the results list
type ResultRow struct {
	widget.BaseWidget

	label *widget.Label
	line  resultLine
}

// NewResultRow creates an empty result row
func NewResultRow() *ResultRow {
	row := &ResultRow{label: widget.NewLabel("")}
	row.label.Truncation = fyne.TextTruncateEllipsis
	row.ExtendBaseWidget(row)
	return row
}

// SetLine updates the row with a new line
func (r *ResultRow) SetLine(line resultLine) {
	r.line = line
	r.label.SetText(line.Text)

	switch line.Kind {
	case lineValid:
		r.label.Importance = widget.SuccessImportance
		r.label.TextStyle = fyne.TextStyle{Bold: true}
	case lineInvalid:
		r.label.Importance = widget.DangerImportance
		r.label.TextStyle = fyne.TextStyle{Bold: true}
	default:
		r.label.Importance = widget.WarningImportance
		r.label.TextStyle = fyne.TextStyle{}
	}
	r.label.Refresh()
}

// Text returns the displayed line
func (r *ResultRow) Text() string {
	return r.line.Text
}

// CreateRenderer implements fyne.Widget
func (r *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.label)
}
