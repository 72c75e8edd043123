package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/engine"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// option label -> stored value
	languageValues map[string]string
	engineValues   map[string]string

	// UI components
	languageSelect *widget.Select
	engineSelect   *widget.Select
	mpvBinaryEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to preferences.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:       settings,
		localization:   loc,
		window:         window,
		onSaved:        onSaved,
		languageValues: make(map[string]string),
		engineValues:   make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	languageOptions := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languageOptions))
	for code := range languageOptions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	languageLabels := make([]string, 0, len(codes))
	for _, code := range codes {
		label := languageOptions[code]
		sd.languageValues[label] = code
		languageLabels = append(languageLabels, label)
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	defaultLabel := sd.localization.GetText(KeyEngineDefault)
	sd.engineValues[defaultLabel] = engine.NameDefault
	engineLabels := []string{defaultLabel}
	for _, name := range engine.Available() {
		sd.engineValues[name] = name
		engineLabels = append(engineLabels, name)
	}
	sd.engineSelect = widget.NewSelect(engineLabels, nil)

	sd.mpvBinaryEntry = widget.NewEntry()
	sd.mpvBinaryEntry.SetPlaceHolder("mpv")

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyEngine)),
		sd.engineSelect,

		widget.NewLabel(sd.localization.GetText(KeyMPVBinary)),
		sd.mpvBinaryEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(labelFor(sd.languageValues, sd.settings.GetLanguage()))
	sd.engineSelect.SetSelected(labelFor(sd.engineValues, sd.settings.GetEngine()))
	sd.mpvBinaryEntry.SetText(sd.settings.GetMPVBinary())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	engineChanged := sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if engineChanged {
		message = sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// apply writes the form to preferences and reports whether the engine
// selection changed
func (sd *SettingsDialog) apply() bool {
	if code, ok := sd.languageValues[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	engineChanged := false
	if name, ok := sd.engineValues[sd.engineSelect.Selected]; ok {
		engineChanged = name != sd.settings.GetEngine()
		sd.settings.SetEngine(name)
	}

	if binary := sd.mpvBinaryEntry.Text; binary != sd.settings.GetMPVBinary() {
		engineChanged = true
		sd.settings.SetMPVBinary(binary)
	}

	return engineChanged
}

func labelFor(values map[string]string, value string) string {
	for label, v := range values {
		if v == value {
			return label
		}
	}
	return ""
}
