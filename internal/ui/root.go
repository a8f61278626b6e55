package ui

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/texture-checker/internal/config"
	"github.com/ytget/texture-checker/internal/export"
	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/platform"
	"github.com/ytget/texture-checker/internal/validate"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	checker      validate.Checker
	exporter     export.Exporter
	settings     *config.Settings
	localization *Localization

	// Requirement form
	folderLabel     *widget.Label
	folderEntry     *widget.Entry
	browseBtn       *widget.Button
	resolutionLabel *widget.Label
	resolutionEntry *widget.Entry
	formatLabel     *widget.Label
	formatSelect    *widget.Select
	mapsLabel       *widget.Label
	maps            *MapChecklist
	addMapBtn       *widget.Button

	// Actions and results
	checkBtn  *widget.Button
	exportBtn *widget.Button
	revealBtn *widget.Button
	progress  *widget.ProgressBar
	results   *ResultsView

	// A single validation runs at a time
	runMutex sync.Mutex
	running  bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, checker validate.Checker, exporter export.Exporter, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		checker:      checker,
		exporter:     exporter,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.checker.SetProgressCallback(ui.onProgress)

	ui.setupUI()
	window.SetCloseIntercept(ui.onClose)

	log.Printf("UI setup completed (language=%s)", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	// Folder row
	ui.folderLabel = widget.NewLabel(l.GetText(KeyFolder))
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetPlaceHolder(l.GetText(KeySelectFolder))
	ui.folderEntry.SetText(ui.settings.GetLastFolder())
	ui.folderEntry.OnSubmitted = func(string) {
		ui.onCheckClick()
	}
	ui.browseBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), ui.onBrowse)

	// Resolution and format row
	ui.resolutionLabel = widget.NewLabel(l.GetText(KeyResolution))
	ui.resolutionEntry = widget.NewEntry()
	ui.resolutionEntry.SetText(strconv.Itoa(ui.settings.GetRequiredResolution()))
	ui.resolutionEntry.Validator = ui.validateResolution

	ui.formatLabel = widget.NewLabel(l.GetText(KeyFormat))
	ui.formatSelect = widget.NewSelect(ui.settings.GetFormatOptions(), nil)
	ui.formatSelect.SetSelected(ui.settings.GetRequiredFormat())

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Required maps
	ui.mapsLabel = widget.NewLabel(l.GetText(KeyRequiredMaps))
	ui.mapsLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.maps = NewMapChecklist(ui.settings.GetKnownMaps(), ui.settings.GetRequiredMaps())
	ui.maps.SetOnChanged(ui.onMapsChanged)
	ui.addMapBtn = widget.NewButton(IconAdd, ui.onAddMapClick)
	ui.addMapBtn.Importance = widget.LowImportance

	// Actions
	ui.checkBtn = widget.NewButton(l.GetText(KeyCheckTextures), ui.onCheckClick)
	ui.checkBtn.Importance = widget.HighImportance
	ui.exportBtn = widget.NewButton(IconExport+" "+l.GetText(KeyExport), ui.onExport)
	ui.exportBtn.Disable()
	ui.revealBtn = widget.NewButton(l.GetText(KeyRevealFolder), ui.onReveal)

	ui.progress = widget.NewProgressBar()
	ui.progress.Hide()

	ui.results = NewResultsView(l)

	// Logo is optional, the folder row stands on its own without it
	var folderLeft fyne.CanvasObject = ui.folderLabel
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		folderLeft = container.NewHBox(logoImage, ui.folderLabel)
	}

	folderRow := container.NewBorder(nil, nil, folderLeft, ui.browseBtn, ui.folderEntry)
	optionsRow := container.NewHBox(
		ui.resolutionLabel,
		container.NewGridWrap(fyne.NewSize(ResolutionEntryWidth, ui.resolutionEntry.MinSize().Height), ui.resolutionEntry),
		ui.formatLabel,
		ui.formatSelect,
		layout.NewSpacer(),
		settingsBtn,
	)
	mapsHeader := container.NewBorder(nil, nil, ui.mapsLabel, ui.addMapBtn)
	actionsRow := container.NewHBox(ui.checkBtn, ui.exportBtn, ui.revealBtn)

	top := container.NewVBox(
		folderRow,
		optionsRow,
		widget.NewSeparator(),
		mapsHeader,
		ui.maps.Container(),
		widget.NewSeparator(),
		actionsRow,
		ui.progress,
	)

	content := container.NewBorder(top, nil, nil, nil, ui.results.Container())
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExport)

	// Language submenu, sorted by code for a stable order
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.folderLabel.SetText(l.GetText(KeyFolder))
	ui.folderEntry.SetPlaceHolder(l.GetText(KeySelectFolder))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(KeyBrowse))
	ui.resolutionLabel.SetText(l.GetText(KeyResolution))
	ui.formatLabel.SetText(l.GetText(KeyFormat))
	ui.mapsLabel.SetText(l.GetText(KeyRequiredMaps))
	ui.exportBtn.SetText(IconExport + " " + l.GetText(KeyExport))
	ui.revealBtn.SetText(l.GetText(KeyRevealFolder))
	if !ui.isRunning() {
		ui.checkBtn.SetText(l.GetText(KeyCheckTextures))
	}

	ui.results.refreshSummary()
}

// validateResolution validates the resolution entry
func (ui *RootUI) validateResolution(input string) error {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || value < config.MinResolution || value > config.MaxResolution {
		return errors.New(ui.localization.Format(KeyInvalidResolution, config.MinResolution, config.MaxResolution))
	}
	return nil
}

// readRequirements collects the folder and the requirements from the form
func (ui *RootUI) readRequirements() (string, model.RequirementConfig, error) {
	folder := strings.TrimSpace(ui.folderEntry.Text)
	if !platform.IsDirectory(folder) {
		return "", model.RequirementConfig{}, errors.New(ui.localization.GetText(KeyInvalidFolder))
	}

	if err := ui.validateResolution(ui.resolutionEntry.Text); err != nil {
		return "", model.RequirementConfig{}, err
	}
	resolution, _ := strconv.Atoi(strings.TrimSpace(ui.resolutionEntry.Text))

	selected := ui.maps.Selected()
	labels := make([]model.MapLabel, 0, len(selected))
	for _, label := range selected {
		labels = append(labels, model.MapLabel(label))
	}

	return folder, model.NewRequirementConfig(resolution, ui.formatSelect.Selected, labels), nil
}

// persistForm stores the current form values as the new defaults
func (ui *RootUI) persistForm() {
	ui.settings.SetLastFolder(ui.folderEntry.Text)
	if ui.validateResolution(ui.resolutionEntry.Text) == nil {
		resolution, _ := strconv.Atoi(strings.TrimSpace(ui.resolutionEntry.Text))
		ui.settings.SetRequiredResolution(resolution)
	}
	if ui.formatSelect.Selected != "" {
		ui.settings.SetRequiredFormat(ui.formatSelect.Selected)
	}
	ui.settings.SetRequiredMaps(ui.maps.Selected())
}

// loadForm refreshes the form from the settings
func (ui *RootUI) loadForm() {
	ui.resolutionEntry.SetText(strconv.Itoa(ui.settings.GetRequiredResolution()))
	ui.formatSelect.SetSelected(ui.settings.GetRequiredFormat())

	known := ui.settings.GetKnownMaps()
	for _, label := range ui.maps.Labels() {
		if !containsString(known, label) {
			ui.maps.Remove(label)
		}
	}
	for _, label := range known {
		ui.maps.Add(label, false)
	}
	ui.maps.SetSelected(ui.settings.GetRequiredMaps())
}

// onCheckClick validates the form and starts a validation run in the background
func (ui *RootUI) onCheckClick() {
	folder, req, err := ui.readRequirements()
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	if !ui.beginRun() {
		log.Printf("Validation already running, ignoring request for %s", folder)
		return
	}

	ui.persistForm()

	ui.checkBtn.Disable()
	ui.exportBtn.Disable()
	ui.progress.SetValue(0)
	ui.progress.Show()

	go func() {
		report, err := ui.checker.ValidateFolder(folder, req)
		fyne.Do(func() {
			ui.finishRun(report, err)
		})
	}()
}

// beginRun marks a run as active. Returns false when one is already active.
func (ui *RootUI) beginRun() bool {
	ui.runMutex.Lock()
	defer ui.runMutex.Unlock()
	if ui.running {
		return false
	}
	ui.running = true
	return true
}

// isRunning reports whether a validation run is active
func (ui *RootUI) isRunning() bool {
	ui.runMutex.Lock()
	defer ui.runMutex.Unlock()
	return ui.running
}

// finishRun publishes the outcome of a run. Must run on the UI goroutine.
func (ui *RootUI) finishRun(report *model.Report, err error) {
	ui.runMutex.Lock()
	ui.running = false
	ui.runMutex.Unlock()

	ui.progress.Hide()
	ui.checkBtn.SetText(ui.localization.GetText(KeyCheckTextures))
	ui.checkBtn.Enable()

	if err != nil {
		log.Printf("Validation failed: %v", err)
		if errors.Is(err, validate.ErrInvalidFolder) {
			dialog.ShowError(errors.New(ui.localization.GetText(KeyInvalidFolder)), ui.window)
		} else {
			dialog.ShowError(err, ui.window)
		}
		return
	}

	ui.results.SetReport(report)
	if report != nil {
		ui.exportBtn.Enable()
	}
}

// onProgress is called by the checker from the worker goroutine
func (ui *RootUI) onProgress(done, total int) {
	fyne.Do(func() {
		if total > 0 {
			ui.progress.SetValue(float64(done) / float64(total))
		}
		ui.checkBtn.SetText(ui.localization.Format(KeyChecking, done, total))
	})
}

// onBrowse opens a folder picker starting at the current folder
func (ui *RootUI) onBrowse() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.selectFolder(uri.Path())
	}, ui.window)

	if folder := strings.TrimSpace(ui.folderEntry.Text); platform.IsDirectory(folder) {
		if lister, err := storage.ListerForURI(storage.NewFileURI(folder)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}
	folderDialog.Show()
}

// selectFolder puts folder in the form. Results of another folder are cleared.
func (ui *RootUI) selectFolder(folder string) {
	ui.folderEntry.SetText(folder)
	ui.settings.SetLastFolder(folder)

	if report := ui.results.Report(); report != nil && report.Folder != folder {
		ui.results.Clear()
		ui.exportBtn.Disable()
	}
}

// onMapsChanged stores the map selection as soon as a box is toggled
func (ui *RootUI) onMapsChanged() {
	ui.settings.SetRequiredMaps(ui.maps.Selected())
}

// onAddMapClick asks for a new custom map type
func (ui *RootUI) onAddMapClick() {
	entry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyNewMapName), entry),
	}

	dialog.ShowForm(
		ui.localization.GetText(KeyAddMap),
		ui.localization.GetText(KeyAdd),
		ui.localization.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if confirmed {
				ui.addCustomMap(entry.Text)
			}
		},
		ui.window,
	)
}

// addCustomMap registers a custom map type and adds a checked box for it.
// Duplicates are rejected with a warning.
func (ui *RootUI) addCustomMap(name string) error {
	name = strings.TrimSpace(name)
	if err := ui.settings.AddCustomMap(name); err != nil {
		if errors.Is(err, config.ErrDuplicateMap) {
			dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.Format(KeyMapExists, name), ui.window)
		} else {
			dialog.ShowError(err, ui.window)
		}
		return err
	}

	ui.maps.Add(name, true)
	ui.settings.SetRequiredMaps(ui.maps.Selected())
	log.Printf("Added custom map type %s", name)
	return nil
}

// onExport saves the current report as JSON or YAML
func (ui *RootUI) onExport() {
	report := ui.results.Report()
	if report == nil {
		dialog.ShowInformation(ui.localization.GetText(KeyExport), ui.localization.GetText(KeyNoResults), ui.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		if err := ui.writeReport(writer, report, path); err != nil {
			log.Printf("Error exporting report to %s: %v", path, err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorExporting), err), ui.window)
			return
		}
		log.Printf("Exported report %s to %s", report.ID, path)
		dialog.ShowConfirm(ui.localization.GetText(KeyExport), ui.localization.Format(KeyReportExported, path), func(open bool) {
			if open {
				ui.onOpenFile(path)
			}
		}, ui.window)
	}, ui.window)

	saveDialog.SetFileName(export.DefaultFileName(report, export.FormatJSON))
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{export.ExtensionJSON, export.ExtensionYAML, export.ExtensionYAMLAlt}))
	saveDialog.Show()
}

// writeReport encodes report to writer in the format picked from path and closes it
func (ui *RootUI) writeReport(writer fyne.URIWriteCloser, report *model.Report, path string) error {
	encodeErr := ui.exporter.Encode(writer, report, export.FormatFromPath(path))
	closeErr := writer.Close()
	if encodeErr != nil {
		return encodeErr
	}
	return closeErr
}

// onReveal opens the texture folder in the system file manager
func (ui *RootUI) onReveal() {
	folder := strings.TrimSpace(ui.folderEntry.Text)
	if !platform.IsDirectory(folder) {
		dialog.ShowError(errors.New(ui.localization.GetText(KeyInvalidFolder)), ui.window)
		return
	}

	if err := platform.OpenFileInManager(folder); err != nil {
		log.Printf("Error revealing folder %s: %v", folder, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}

// onOpenFile opens an exported report with the default application
func (ui *RootUI) onOpenFile(path string) {
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.persistForm()
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed defaults to the form and the language
func (ui *RootUI) onSettingsSaved() {
	ui.loadForm()
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// onClose stores the form and closes the window
func (ui *RootUI) onClose() {
	ui.persistForm()
	ui.window.Close()
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
