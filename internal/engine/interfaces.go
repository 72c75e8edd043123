package engine

import (
	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/surface"
)

// Engine defines the media engine consumed by the player controller.
// Times are in milliseconds.
type Engine interface {
	// Open hands a media source to the engine without starting playback
	Open(path string) error

	Play() error
	Pause() error
	Stop() error

	IsPlaying() (bool, error)
	State() (model.PlaybackState, error)

	// SetVolume sets the output volume, 0 to 100
	SetVolume(volume int) error

	TimeMs() (int, error)
	SetTimeMs(ms int) error
	DurationMs() (int, error)

	// BindSurface renders video into a native window handle
	BindSurface(h surface.Handle) error

	// Close releases the engine and all associated system resources
	Close() error
}
