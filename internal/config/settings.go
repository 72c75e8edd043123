package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyVolume        = "volume"
	KeyLastDirectory = "last_directory"
	KeyEngine        = "engine"
	KeyMPVBinary     = "mpv_binary"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultVolume   = model.DefaultVolume
	DefaultEngine   = ""
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVolume returns the last used volume
func (s *Settings) GetVolume() int {
	return model.ClampVolume(s.app.Preferences().IntWithFallback(KeyVolume, DefaultVolume))
}

// SetVolume stores the volume clamped to 0-100
func (s *Settings) SetVolume(volume int) {
	s.app.Preferences().SetInt(KeyVolume, model.ClampVolume(volume))
}

// GetLastDirectory returns the directory the open dialog starts in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeVideosDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the last opened file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetEngine returns the configured engine name, "" for the platform default
func (s *Settings) GetEngine() string {
	return s.app.Preferences().StringWithFallback(KeyEngine, DefaultEngine)
}

// SetEngine sets the engine name
func (s *Settings) SetEngine(name string) {
	s.app.Preferences().SetString(KeyEngine, name)
}

// GetMPVBinary returns the mpv executable, "" for mpv on PATH
func (s *Settings) GetMPVBinary() string {
	return s.app.Preferences().String(KeyMPVBinary)
}

// SetMPVBinary sets the mpv executable
func (s *Settings) SetMPVBinary(path string) {
	s.app.Preferences().SetString(KeyMPVBinary, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
