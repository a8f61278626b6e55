package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/texture-checker/internal/model"
)

var (
	accent  = lipgloss.Color("#0EA5E9") // sky
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
	setStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	emptyMarker = dimStyle.Render("No texture sets found.")
)

// RenderReport renders a report as a styled terminal string: a header box
// with the folder and counts, then one line per set with its diagnostics.
func RenderReport(r *model.Report) string {
	var b strings.Builder

	summary := r.Summary()
	counts := fmt.Sprintf("%d set(s)  %s  %s",
		summary.Total,
		passStyle.Render(fmt.Sprintf("%d valid", summary.Valid)),
		failStyle.Render(fmt.Sprintf("%d invalid", summary.Invalid)),
	)
	requirements := dimStyle.Render(fmt.Sprintf("%dx%d %s  maps: %s",
		r.Requirements.Resolution, r.Requirements.Resolution,
		r.Requirements.Extension, joinLabels(r.Requirements.RequiredMaps)))

	b.WriteString(boxStyle.Render(titleStyle.Render(r.Folder) + "\n" + requirements + "\n" + counts))
	b.WriteString("\n\n")

	if len(r.Results) == 0 {
		b.WriteString("  " + emptyMarker + "\n")
		return b.String()
	}

	for _, result := range r.Results {
		b.WriteString(renderResult(result))
	}

	return b.String()
}

func renderResult(result model.ValidationResult) string {
	var b strings.Builder

	marker := passStyle.Render("●")
	message := dimStyle.Render(result.Message)
	if !result.Status.IsValid() {
		marker = failStyle.Render("●")
		message = failStyle.Render(result.Message)
	}

	b.WriteString(fmt.Sprintf("  %s %s  %s\n", marker, setStyle.Render(string(result.TextureSet)), message))
	for _, detail := range result.Details {
		b.WriteString(fmt.Sprintf("      %s %s\n", warnStyle.Render("⚠"), detail))
	}
	return b.String()
}

// RenderPlain renders the report as the GUI results list shows it, without
// styling, followed by a summary line. Used when output is not a terminal.
func RenderPlain(r *model.Report) string {
	var b strings.Builder
	for _, result := range r.Results {
		for _, line := range result.Lines() {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	summary := r.Summary()
	b.WriteString(fmt.Sprintf("%d set(s): %d valid, %d invalid\n", summary.Total, summary.Valid, summary.Invalid))
	return b.String()
}

func joinLabels(labels []model.MapLabel) string {
	if len(labels) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, string(label))
	}
	return strings.Join(parts, ", ")
}
