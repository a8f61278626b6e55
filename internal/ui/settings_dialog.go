package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/texture-checker/internal/config"
)

// SettingsDialog edits the default requirements, custom map types and language
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	resolutionEntry *widget.Entry
	formatSelect    *widget.Select
	languageSelect  *widget.Select
	customMapSelect *widget.Select
	removeMapBtn    *widget.Button

	// languageCodes maps a display name of languageSelect back to its code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.resolutionEntry = widget.NewEntry()
	sd.resolutionEntry.SetPlaceHolder(strconv.Itoa(config.MinResolution) + "-" + strconv.Itoa(config.MaxResolution))

	sd.formatSelect = widget.NewSelect(sd.settings.GetFormatOptions(), nil)

	// Language selection shows names, stores codes
	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageCodes = make(map[string]string, len(languageLabels))
	languageNames := make([]string, 0, len(languageLabels))
	for code, name := range languageLabels {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.customMapSelect = widget.NewSelect(nil, nil)
	sd.removeMapBtn = widget.NewButton(l.GetText(KeyRemove), sd.onRemoveCustomMap)
	customMapRow := container.NewBorder(nil, nil, nil, sd.removeMapBtn, sd.customMapSelect)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyResolution)+":"),
		sd.resolutionEntry,

		widget.NewLabel(l.GetText(KeyFormat)+":"),
		sd.formatSelect,

		widget.NewLabel(l.GetText(KeyCustomMaps)+":"),
		customMapRow,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.resolutionEntry.SetText(strconv.Itoa(sd.settings.GetRequiredResolution()))
	sd.formatSelect.SetSelected(sd.settings.GetRequiredFormat())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.refreshCustomMaps()
}

// refreshCustomMaps reloads the removable custom map types
func (sd *SettingsDialog) refreshCustomMaps() {
	custom := sd.settings.GetCustomMaps()
	sd.customMapSelect.Options = custom
	sd.customMapSelect.ClearSelected()
	if len(custom) == 0 {
		sd.removeMapBtn.Disable()
	} else {
		sd.removeMapBtn.Enable()
	}
	sd.customMapSelect.Refresh()
}

// onRemoveCustomMap removes the selected custom map type
func (sd *SettingsDialog) onRemoveCustomMap() {
	label := sd.customMapSelect.Selected
	if label == "" {
		return
	}
	sd.settings.RemoveCustomMap(label)
	sd.refreshCustomMaps()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if resolution, err := strconv.Atoi(sd.resolutionEntry.Text); err == nil {
		sd.settings.SetRequiredResolution(resolution)
	}

	if sd.formatSelect.Selected != "" {
		sd.settings.SetRequiredFormat(sd.formatSelect.Selected)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
