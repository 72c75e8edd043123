package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/engine"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	sd := NewSettingsDialog(app.NewWindow(""), settings, NewLocalization(), nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	sd, _ := newTestSettingsDialog(t)

	if sd.languageSelect.Selected != "System Default" {
		t.Errorf("Expected System Default, got %q", sd.languageSelect.Selected)
	}
	if sd.engineSelect.Selected != "Default" {
		t.Errorf("Expected Default engine, got %q", sd.engineSelect.Selected)
	}
}

func TestSettingsDialog_Apply(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.languageSelect.SetSelected("Русский")

	if changed := sd.apply(); changed {
		t.Error("Expected engine unchanged")
	}
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %q", settings.GetLanguage())
	}
}

func TestSettingsDialog_EngineChange(t *testing.T) {
	available := engine.Available()
	if len(available) == 0 {
		t.Skip("no engine compiled in")
	}
	sd, settings := newTestSettingsDialog(t)

	sd.engineSelect.SetSelected(available[0])

	if changed := sd.apply(); !changed {
		t.Error("Expected engine change to be reported")
	}
	if settings.GetEngine() != available[0] {
		t.Errorf("Expected engine %q, got %q", available[0], settings.GetEngine())
	}
}

func TestSettingsDialog_MPVBinaryChange(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.mpvBinaryEntry.SetText("/opt/mpv/bin/mpv")

	if changed := sd.apply(); !changed {
		t.Error("Expected binary change to require restart")
	}
	if settings.GetMPVBinary() != "/opt/mpv/bin/mpv" {
		t.Errorf("Expected binary saved, got %q", settings.GetMPVBinary())
	}
}
