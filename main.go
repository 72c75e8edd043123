package main

import (
	"emperror.dev/errors"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/engine"
	"github.com/ytget/video-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.video-player"
)

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	if version != "dev" {
		logger = logger.Level(zerolog.InfoLevel)
	}
	logger.Info().Msgf("Video Player v%s starting", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		myApp.SetIcon(ui.FallbackIcon())
	}

	settings := config.NewSettings(myApp)

	eng, err := newEngine(settings, &logger)
	if err != nil {
		logger.Fatal().Err(err).Strs("available", engine.Available()).Msg("no media engine")
	}

	myWindow := myApp.NewWindow("")
	player := ui.NewPlayerUI(myApp, myWindow, eng, settings, &logger)
	player.ShowAndRun()
}

// newEngine creates the configured engine, falling back to the build default
// when the configured one is not compiled in
func newEngine(settings *config.Settings, logger *zerolog.Logger) (engine.Engine, error) {
	opts := engine.Options{
		MPVBinary: settings.GetMPVBinary(),
		Logger:    logger,
	}

	name := settings.GetEngine()
	eng, err := engine.New(name, opts)
	if err == nil || name == engine.NameDefault || !errors.Is(err, engine.ErrUnknownEngine) {
		return eng, err
	}

	logger.Warn().Err(err).Str("engine", name).Msg("configured engine unavailable, using default")
	return engine.New(engine.NameDefault, opts)
}
