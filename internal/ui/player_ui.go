package ui

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/controller"
	"github.com/ytget/video-player/internal/engine"
	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/platform"
	"github.com/ytget/video-player/internal/schedule"
)

// PlayerUI is the control window. It implements controller.View.
type PlayerUI struct {
	app      fyne.App
	window   fyne.Window
	engine   engine.Engine
	settings *config.Settings
	log      *zerolog.Logger

	controller   *controller.PlayerController
	localization *Localization
	video        *VideoWindow

	poll   *schedule.Task
	cancel context.CancelFunc

	label model.ButtonLabel

	// UI components
	seekBar        *SeekSlider
	loadBtn        *widget.Button
	playPauseBtn   *widget.Button
	stopBtn        *widget.Button
	volumeLabel    *widget.Label
	volumeSlider   *widget.Slider
	timestampLabel *widget.Label
}

var _ controller.View = (*PlayerUI)(nil)

// NewPlayerUI builds the control window content around an engine
func NewPlayerUI(app fyne.App, window fyne.Window, eng engine.Engine, settings *config.Settings, logger *zerolog.Logger) *PlayerUI {
	ui := &PlayerUI{
		app:          app,
		window:       window,
		engine:       eng,
		settings:     settings,
		log:          logger,
		localization: NewLocalization(),
		label:        model.LabelPlay,
	}

	ui.localization.SetLanguage(settings.GetLanguage())
	ui.controller = controller.New(eng, ui)
	ui.video = NewVideoWindow(app, eng, logger)

	ui.setupUI()
	ui.createMenu()
	ui.applyInitialVolume()

	window.SetMaster()
	window.SetOnClosed(ui.Shutdown)

	return ui
}

// Controller returns the controller driving this window
func (ui *PlayerUI) Controller() *controller.PlayerController {
	return ui.controller
}

func (ui *PlayerUI) setupUI() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.window.Resize(fyne.NewSize(ControlWindowWidth, ControlWindowHeight))

	ui.seekBar = NewSeekSlider()
	ui.seekBar.OnDragStart = ui.controller.OnDragStart
	ui.seekBar.OnDragEnd = ui.onSeekReleased

	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoad), ui.onLoad)
	ui.playPauseBtn = widget.NewButton(ui.localization.ButtonLabel(ui.label), ui.onPlayPause)
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStop)

	ui.volumeLabel = widget.NewLabel(ui.localization.GetText(KeyVolume))
	ui.volumeSlider = widget.NewSlider(VolumeMin, VolumeMax)
	ui.volumeSlider.Step = VolumeStep
	ui.volumeSlider.OnChangeEnded = ui.onVolumeReleased

	ui.timestampLabel = widget.NewLabel(model.ZeroTimestamp)
	ui.timestampLabel.Alignment = fyne.TextAlignTrailing

	volumeBox := container.NewGridWrap(
		fyne.NewSize(VolumeSliderWidth, ui.volumeSlider.MinSize().Height),
		ui.volumeSlider,
	)
	timestampBox := container.NewGridWrap(
		fyne.NewSize(TimestampLabelWidth, ui.timestampLabel.MinSize().Height),
		ui.timestampLabel,
	)

	controls := container.NewHBox(
		ui.loadBtn,
		ui.playPauseBtn,
		ui.stopBtn,
		ui.volumeLabel,
		volumeBox,
		layout.NewSpacer(),
		timestampBox,
	)

	content := container.NewBorder(
		container.NewVBox(ui.seekBar, controls),
		nil, nil, nil,
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu. Fyne appends Quit to the first menu.
func (ui *PlayerUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpen), ui.onLoad)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyReveal), ui.onReveal)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			openItem,
			revealItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		languageMenu,
	))
}

func (ui *PlayerUI) applyInitialVolume() {
	volume := ui.settings.GetVolume()
	ui.volumeSlider.SetValue(float64(volume))
	ui.volumeSlider.OnChanged = ui.onVolumeChanged
	if err := ui.controller.SetVolume(volume); err != nil {
		ui.log.Warn().Err(err).Msg("failed to apply initial volume")
	}
}

// Start shows the video window and begins refreshing the transport widgets
func (ui *PlayerUI) Start() {
	ui.video.Show()

	ctx, cancel := context.WithCancel(context.Background())
	ui.cancel = cancel
	ui.poll = schedule.NewTask(PollInterval, fyne.Do, ui.refresh)
	ui.poll.OnPanic(func(recovered any) {
		ui.log.Error().Interface("panic", recovered).Msg("refresh panicked")
	})
	ui.poll.Start(ctx)
}

// ShowAndRun starts the player and blocks in the Fyne event loop
func (ui *PlayerUI) ShowAndRun() {
	ui.Start()
	ui.window.ShowAndRun()
}

// Shutdown stops refreshing and releases the engine
func (ui *PlayerUI) Shutdown() {
	if ui.cancel != nil {
		ui.cancel()
	}
	if ui.poll != nil {
		ui.poll.Stop()
	}
	ui.settings.SetVolume(ui.controller.Session().Volume)
	if err := ui.engine.Close(); err != nil {
		ui.log.Error().Err(err).Msg("failed to close media engine")
	}
	ui.video.Close()
}

// SetPlayPauseLabel implements controller.View
func (ui *PlayerUI) SetPlayPauseLabel(label model.ButtonLabel) {
	ui.label = label
	ui.playPauseBtn.SetText(ui.localization.ButtonLabel(label))
}

// SetSeekPosition implements controller.View
func (ui *PlayerUI) SetSeekPosition(percent float64) {
	ui.seekBar.SetValue(percent)
}

// SeekPosition implements controller.View
func (ui *PlayerUI) SeekPosition() float64 {
	return ui.seekBar.Value
}

// SetTimestamp implements controller.View
func (ui *PlayerUI) SetTimestamp(text string) {
	ui.timestampLabel.SetText(text)
}

func (ui *PlayerUI) refresh() {
	if err := ui.controller.PollAndRefresh(); err != nil {
		ui.log.Debug().Err(err).Msg("refresh failed")
	}
}

func (ui *PlayerUI) onLoad() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.log.Error().Err(err).Msg("file dialog failed")
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			ui.log.Debug().Err(cerr).Msg("failed to close dialog reader")
		}
		ui.loadPath(path)
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(platform.SupportedVideoExtensions))
	if dir := ui.settings.GetLastDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}
	fileDialog.Resize(fyne.NewSize(ControlWindowWidth, ControlWindowHeight))
	fileDialog.Show()
}

func (ui *PlayerUI) loadPath(path string) {
	if path == "" {
		return
	}
	ui.settings.SetLastDirectory(filepath.Dir(path))

	if err := ui.controller.LoadMedia(path); err != nil {
		ui.log.Error().Err(err).Str("path", path).Msg("failed to load media")
		return
	}

	session := ui.controller.Session()
	ui.log.Info().Str("session", session.ID).Str("path", path).Msg("media loaded")
	ui.updateTitles(session.GetDisplayTitle())
}

func (ui *PlayerUI) updateTitles(mediaTitle string) {
	title := ui.localization.GetText(KeyAppTitle)
	videoTitle := ui.localization.GetText(KeyVideoTitle)
	if mediaTitle != "" {
		title = mediaTitle + TitleSeparator + title
		videoTitle = mediaTitle
	}
	ui.window.SetTitle(title)
	ui.video.SetTitle(videoTitle)
}

func (ui *PlayerUI) onPlayPause() {
	if err := ui.controller.TogglePlayPause(); err != nil {
		ui.log.Error().Err(err).Msg("failed to toggle playback")
	}
}

func (ui *PlayerUI) onStop() {
	if err := ui.controller.Stop(); err != nil {
		ui.log.Error().Err(err).Msg("failed to stop playback")
	}
}

func (ui *PlayerUI) onVolumeChanged(value float64) {
	if err := ui.controller.SetVolume(int(value)); err != nil {
		ui.log.Error().Err(err).Msg("failed to set volume")
	}
}

func (ui *PlayerUI) onVolumeReleased(value float64) {
	ui.settings.SetVolume(int(value))
}

func (ui *PlayerUI) onSeekReleased() {
	if err := ui.controller.OnDragEnd(); err != nil {
		ui.log.Error().Err(err).Float64("position", ui.seekBar.Value).Msg("failed to seek")
	}
}

func (ui *PlayerUI) onReveal() {
	session := ui.controller.Session()
	if !session.MediaLoaded {
		return
	}
	if err := platform.OpenFileInManager(session.Path); err != nil {
		ui.log.Error().Err(err).Str("path", session.Path).Msg("failed to reveal file")
	}
}

func (ui *PlayerUI) onShowSettings() {
	NewSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved).Show()
}

func (ui *PlayerUI) onSettingsSaved() {
	ui.onLanguageChange(ui.settings.GetLanguage())
}

func (ui *PlayerUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *PlayerUI) refreshUITexts() {
	ui.loadBtn.SetText(ui.localization.GetText(KeyLoad))
	ui.playPauseBtn.SetText(ui.localization.ButtonLabel(ui.label))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))
	ui.volumeLabel.SetText(ui.localization.GetText(KeyVolume))
	session := ui.controller.Session()
	ui.updateTitles(session.GetDisplayTitle())
}
