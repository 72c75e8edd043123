//go:build vlc

package engine

import (
	"emperror.dev/errors"
	vlc "github.com/adrg/libvlc-go/v3"
	"github.com/rs/zerolog"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/surface"
)

func init() {
	register(NameVLC, func(opts Options) (Engine, error) {
		return NewVLC(opts.Logger)
	}, true)
}

// VLC implements Engine on top of libVLC.
type VLC struct {
	player *vlc.Player
	media  *vlc.Media
	log    *zerolog.Logger
}

// NewVLC initializes libVLC and creates a media player.
func NewVLC(logger *zerolog.Logger) (*VLC, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if err := vlc.Init("--quiet", "--no-video-title-show"); err != nil {
		return nil, errors.Wrap(err, "init libvlc")
	}
	p, err := vlc.NewPlayer()
	if err != nil {
		_ = vlc.Release()
		return nil, errors.Wrap(err, "create libvlc player")
	}
	logger.Info().Msg("libvlc player created")
	return &VLC{player: p, log: logger}, nil
}

// Open replaces the current media.
func (v *VLC) Open(path string) error {
	m, err := vlc.NewMediaFromPath(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	if err := v.player.SetMedia(m); err != nil {
		_ = m.Release()
		return errors.Wrapf(err, "set media %s", path)
	}
	if v.media != nil {
		_ = v.media.Release()
	}
	v.media = m
	return nil
}

func (v *VLC) Play() error  { return v.player.Play() }
func (v *VLC) Pause() error { return v.player.SetPause(true) }
func (v *VLC) Stop() error  { return v.player.Stop() }

func (v *VLC) IsPlaying() (bool, error) {
	return v.player.IsPlaying(), nil
}

// State maps libVLC media states; opening, buffering, ended and error read as stopped.
func (v *VLC) State() (model.PlaybackState, error) {
	st, err := v.player.MediaState()
	if err != nil {
		return model.StateStopped, err
	}
	switch st {
	case vlc.MediaPlaying:
		return model.StatePlaying, nil
	case vlc.MediaPaused:
		return model.StatePaused, nil
	default:
		return model.StateStopped, nil
	}
}

func (v *VLC) SetVolume(volume int) error {
	return v.player.SetVolume(model.ClampVolume(volume))
}

func (v *VLC) TimeMs() (int, error)     { return v.player.MediaTime() }
func (v *VLC) SetTimeMs(ms int) error   { return v.player.SetMediaTime(ms) }
func (v *VLC) DurationMs() (int, error) { return v.player.MediaLength() }

// BindSurface dispatches to the libVLC call matching the handle's platform.
func (v *VLC) BindSurface(h surface.Handle) error {
	var err error
	switch h.Kind {
	case surface.KindX11:
		err = v.player.SetXWindow(uint32(h.Value))
	case surface.KindHWND:
		err = v.player.SetHWND(h.Value)
	case surface.KindNSObject:
		err = v.player.SetNSObject(h.Value)
	default:
		return errors.Wrapf(surface.ErrUnsupported, "handle %s", h)
	}
	return errors.Wrapf(err, "bind surface %s", h)
}

// Close stops playback and releases libVLC.
func (v *VLC) Close() error {
	_ = v.player.Stop()
	if v.media != nil {
		_ = v.media.Release()
		v.media = nil
	}
	if err := v.player.Release(); err != nil {
		return errors.Wrap(err, "release player")
	}
	v.log.Info().Msg("libvlc released")
	return vlc.Release()
}
