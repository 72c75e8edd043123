package controller

import (
	"github.com/ytget/video-player/internal/engine"
	"github.com/ytget/video-player/internal/model"
)

// MillisPerSecond converts engine milliseconds to whole seconds
const MillisPerSecond = 1000

// PlayerController mediates between the transport widgets and the engine.
// It is not safe for concurrent use; every call must come from the UI thread.
// Engine errors are returned unchanged.
type PlayerController struct {
	engine  engine.Engine
	view    View
	session *model.Session
	drag    DragState
}

// New creates a controller for an engine and its widgets
func New(e engine.Engine, v View) *PlayerController {
	return &PlayerController{
		engine:  e,
		view:    v,
		session: model.NewSession(),
	}
}

// Session returns a copy of the current session
func (c *PlayerController) Session() model.Session {
	return *c.session
}

// Dragging reports whether the seek bar is being dragged
func (c *PlayerController) Dragging() bool {
	return c.drag == DragDragging
}

// LoadMedia hands a user-selected file to the engine. An empty path is a
// cancelled selection and does nothing.
func (c *PlayerController) LoadMedia(path string) error {
	if path == "" {
		return nil
	}
	if err := c.engine.Open(path); err != nil {
		return err
	}
	c.session.Load(path)
	c.view.SetPlayPauseLabel(model.LabelPlay)
	c.view.SetSeekPosition(0)
	return nil
}

// TogglePlayPause pauses a playing engine and plays otherwise
func (c *PlayerController) TogglePlayPause() error {
	if !c.session.MediaLoaded {
		return nil
	}
	playing, err := c.engine.IsPlaying()
	if err != nil {
		return err
	}
	if playing {
		if err := c.engine.Pause(); err != nil {
			return err
		}
		c.view.SetPlayPauseLabel(model.LabelPlay)
		return nil
	}
	if err := c.engine.Play(); err != nil {
		return err
	}
	c.view.SetPlayPauseLabel(model.LabelPause)
	return nil
}

// Stop stops the engine and resets the transport controls, even when the
// engine reports an error.
func (c *PlayerController) Stop() error {
	err := c.engine.Stop()
	reset := model.ResetTransport()
	c.view.SetPlayPauseLabel(reset.Label)
	c.view.SetSeekPosition(reset.SeekPosition)
	c.view.SetTimestamp(reset.Timestamp)
	return err
}

// SetVolume forwards a 0-100 volume to the engine
func (c *PlayerController) SetVolume(volume int) error {
	return c.engine.SetVolume(c.session.SetVolume(volume))
}

// SeekTo moves playback to percent (0-100) of the current duration
func (c *PlayerController) SeekTo(percent float64) error {
	if !c.session.MediaLoaded {
		return nil
	}
	durationMs, err := c.engine.DurationMs()
	if err != nil {
		return err
	}
	duration := durationMs / MillisPerSecond
	if duration <= 0 {
		return nil
	}
	target := percent / 100 * float64(duration)
	return c.engine.SetTimeMs(int(target * MillisPerSecond))
}

// OnDragStart marks the seek bar as user-controlled
func (c *PlayerController) OnDragStart() {
	c.drag = DragDragging
}

// OnDragEnd releases the seek bar and seeks to where it was dropped
func (c *PlayerController) OnDragEnd() error {
	c.drag = DragIdle
	return c.SeekTo(c.view.SeekPosition())
}

// PollAndRefresh reflects the engine position into the seek bar and
// timestamp. It leaves the controls alone while the bar is dragged, when
// the engine is stopped, or when the duration is unknown.
func (c *PlayerController) PollAndRefresh() error {
	if c.drag == DragDragging {
		return nil
	}
	state, err := c.engine.State()
	if err != nil {
		return err
	}
	if !state.IsActive() {
		return nil
	}

	timeMs, err := c.engine.TimeMs()
	if err != nil {
		return err
	}
	durationMs, err := c.engine.DurationMs()
	if err != nil {
		return err
	}

	elapsed := timeMs / MillisPerSecond
	duration := durationMs / MillisPerSecond
	if duration <= 0 {
		return nil
	}
	c.view.SetSeekPosition(model.SeekPercent(elapsed, duration))
	c.view.SetTimestamp(model.FormatTimestamp(elapsed, duration))
	return nil
}
