package ui

import (
	"time"

	"emperror.dev/errors"
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/rs/zerolog"

	"github.com/ytget/video-player/internal/engine"
	"github.com/ytget/video-player/internal/surface"
)

// VideoWindow is a black window whose native handle is handed to the engine
// as its render target. Closing it only hides it; the control window owns
// the application lifetime.
type VideoWindow struct {
	window fyne.Window
	engine engine.Engine
	log    *zerolog.Logger

	bound surface.Handle
}

// NewVideoWindow creates the (hidden) video window
func NewVideoWindow(app fyne.App, eng engine.Engine, logger *zerolog.Logger) *VideoWindow {
	w := app.NewWindow(NewLocalization().GetText(KeyVideoTitle))
	w.SetContent(canvas.NewRectangle(VideoBackground))
	w.Resize(fyne.NewSize(VideoWindowWidth, VideoWindowHeight))
	w.SetCloseIntercept(w.Hide)

	return &VideoWindow{
		window: w,
		engine: eng,
		log:    logger,
	}
}

// Show displays the window and binds it to the engine once it is mapped
func (v *VideoWindow) Show() {
	v.window.Show()
	if v.bound.IsValid() {
		return
	}
	time.AfterFunc(SurfaceBindDelay, func() {
		fyne.Do(v.bind)
	})
}

// SetTitle sets the window title
func (v *VideoWindow) SetTitle(title string) {
	v.window.SetTitle(title)
}

// Bound returns the handle given to the engine, or an invalid handle
func (v *VideoWindow) Bound() surface.Handle {
	return v.bound
}

// Close destroys the window
func (v *VideoWindow) Close() {
	v.window.Close()
}

func (v *VideoWindow) bind() {
	if v.bound.IsValid() {
		return
	}

	handle, err := surface.FromWindow(v.window)
	if err != nil {
		if errors.Is(err, surface.ErrUnsupported) {
			v.log.Warn().Err(err).Msg("no native video surface, engine will open its own window")
			return
		}
		v.log.Error().Err(err).Msg("failed to read native window handle")
		return
	}

	if err := v.engine.BindSurface(handle); err != nil {
		v.log.Error().Err(err).Str("surface", handle.String()).Msg("failed to bind video surface")
		return
	}

	v.bound = handle
	v.log.Info().Str("surface", handle.String()).Msg("video surface bound")
}
