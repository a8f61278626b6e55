package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/texture-checker/internal/model"
)

// MapChecklist shows one checkbox per known map label. Labels are displayed
// split into words ("BaseColor" as "Base Color") but stored verbatim.
type MapChecklist struct {
	labels    []string
	checks    map[string]*widget.Check
	container *fyne.Container
	onChanged func()
}

// NewMapChecklist creates checkboxes for known, checking those in selected
func NewMapChecklist(known, selected []string) *MapChecklist {
	mc := &MapChecklist{
		checks:    make(map[string]*widget.Check),
		container: container.NewGridWithColumns(MapColumns),
	}

	for _, label := range known {
		mc.Add(label, false)
	}
	mc.SetSelected(selected)
	return mc
}

// Container returns the grid holding the checkboxes
func (mc *MapChecklist) Container() *fyne.Container {
	return mc.container
}

// SetOnChanged sets the callback invoked when a box is toggled by the user
func (mc *MapChecklist) SetOnChanged(callback func()) {
	mc.onChanged = callback
}

// Add appends a checkbox for label. Existing labels are left untouched.
func (mc *MapChecklist) Add(label string, checked bool) {
	if _, exists := mc.checks[label]; exists {
		return
	}

	check := widget.NewCheck(model.MapLabel(label).DisplayName(), func(bool) {
		if mc.onChanged != nil {
			mc.onChanged()
		}
	})
	check.Checked = checked

	mc.labels = append(mc.labels, label)
	mc.checks[label] = check
	mc.container.Add(check)
}

// Remove drops the checkbox for label
func (mc *MapChecklist) Remove(label string) {
	check, exists := mc.checks[label]
	if !exists {
		return
	}

	mc.container.Remove(check)
	delete(mc.checks, label)
	for i, l := range mc.labels {
		if l == label {
			mc.labels = append(mc.labels[:i], mc.labels[i+1:]...)
			break
		}
	}
}

// SetSelected checks exactly the labels in selected
func (mc *MapChecklist) SetSelected(selected []string) {
	want := make(map[string]bool, len(selected))
	for _, label := range selected {
		want[label] = true
	}
	for label, check := range mc.checks {
		check.Checked = want[label]
		check.Refresh()
	}
}

// Selected returns the checked labels in display order
func (mc *MapChecklist) Selected() []string {
	selected := make([]string, 0, len(mc.labels))
	for _, label := range mc.labels {
		if mc.checks[label].Checked {
			selected = append(selected, label)
		}
	}
	return selected
}

// Labels returns every label in display order
func (mc *MapChecklist) Labels() []string {
	return append([]string(nil), mc.labels...)
}
