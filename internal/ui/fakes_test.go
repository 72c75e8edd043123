package ui

import (
	"sync"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/surface"
)

// stubEngine is a thread-safe in-memory engine
type stubEngine struct {
	mu         sync.Mutex
	opened     string
	state      model.PlaybackState
	timeMs     int
	durationMs int
	volumes    []int
	seeks      []int
	bound      []surface.Handle
	closed     bool
}

func newStubEngine() *stubEngine {
	return &stubEngine{state: model.StateStopped}
}

func (e *stubEngine) Open(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opened = path
	e.state = model.StatePaused
	return nil
}

func (e *stubEngine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = model.StatePlaying
	return nil
}

func (e *stubEngine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = model.StatePaused
	return nil
}

func (e *stubEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = model.StateStopped
	return nil
}

func (e *stubEngine) IsPlaying() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == model.StatePlaying, nil
}

func (e *stubEngine) State() (model.PlaybackState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, nil
}

func (e *stubEngine) SetVolume(volume int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volumes = append(e.volumes, volume)
	return nil
}

func (e *stubEngine) TimeMs() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeMs, nil
}

func (e *stubEngine) SetTimeMs(ms int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seeks = append(e.seeks, ms)
	return nil
}

func (e *stubEngine) DurationMs() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.durationMs, nil
}

func (e *stubEngine) BindSurface(h surface.Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bound = append(e.bound, h)
	return nil
}

func (e *stubEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *stubEngine) lastVolume() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.volumes) == 0 {
		return -1
	}
	return e.volumes[len(e.volumes)-1]
}

func (e *stubEngine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}
