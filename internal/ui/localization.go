package ui

import "github.com/ytget/video-player/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyVideoTitle      = "video_title"
	KeyLoad            = "load"
	KeyPlay            = "play"
	KeyPause           = "pause"
	KeyStop            = "stop"
	KeyVolume          = "volume"
	KeyFile            = "file"
	KeyOpen            = "open"
	KeyReveal          = "reveal"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyEngine          = "engine"
	KeyEngineDefault   = "engine_default"
	KeyMPVBinary       = "mpv_binary"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
)

const fallbackLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: fallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" and unknown codes fall
// back to English.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
		return
	}
	l.currentLanguage = fallbackLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if text, found := l.texts[fallbackLanguage][key]; found {
		return text
	}

	return key
}

// ButtonLabel returns the localized text of a play/pause label
func (l *Localization) ButtonLabel(label model.ButtonLabel) string {
	if label == model.LabelPause {
		return l.GetText(KeyPause)
	}
	return l.GetText(KeyPlay)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Video Player",
		KeyVideoTitle:      "Video",
		KeyLoad:            "Load",
		KeyPlay:            "Play",
		KeyPause:           "Pause",
		KeyStop:            "Stop",
		KeyVolume:          "Volume",
		KeyFile:            "File",
		KeyOpen:            "Open…",
		KeyReveal:          "Reveal in file manager",
		KeySettings:        "Settings…",
		KeyLanguage:        "Language",
		KeyEngine:          "Engine",
		KeyEngineDefault:   "Default",
		KeyMPVBinary:       "mpv executable",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved",
		KeyRestartRequired: "Engine changes apply after restart",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Видеоплеер",
		KeyVideoTitle:      "Видео",
		KeyLoad:            "Загрузить",
		KeyPlay:            "Воспроизвести",
		KeyPause:           "Пауза",
		KeyStop:            "Стоп",
		KeyVolume:          "Громкость",
		KeyFile:            "Файл",
		KeyOpen:            "Открыть…",
		KeyReveal:          "Показать в файловом менеджере",
		KeySettings:        "Настройки…",
		KeyLanguage:        "Язык",
		KeyEngine:          "Движок",
		KeyEngineDefault:   "По умолчанию",
		KeyMPVBinary:       "Исполняемый файл mpv",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены",
		KeyRestartRequired: "Смена движка вступит в силу после перезапуска",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Reprodutor de Vídeo",
		KeyVideoTitle:      "Vídeo",
		KeyLoad:            "Carregar",
		KeyPlay:            "Reproduzir",
		KeyPause:           "Pausar",
		KeyStop:            "Parar",
		KeyVolume:          "Volume",
		KeyFile:            "Arquivo",
		KeyOpen:            "Abrir…",
		KeyReveal:          "Mostrar no gerenciador de arquivos",
		KeySettings:        "Configurações…",
		KeyLanguage:        "Idioma",
		KeyEngine:          "Motor",
		KeyEngineDefault:   "Padrão",
		KeyMPVBinary:       "Executável do mpv",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas",
		KeyRestartRequired: "A troca de motor vale após reiniciar",
	}
}
