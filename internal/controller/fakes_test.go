package controller

import (
	"fmt"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/surface"
)

// fakeEngine records every call and serves scripted state
type fakeEngine struct {
	calls      []string
	state      model.PlaybackState
	timeMs     int
	durationMs int
	volumes    []int
	seeks      []int
	openErr    error
	stopErr    error
	stateErr   error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{state: model.StateStopped}
}

func (f *fakeEngine) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeEngine) Open(path string) error {
	f.record("Open " + path)
	if f.openErr != nil {
		return f.openErr
	}
	f.state = model.StatePaused
	return nil
}

func (f *fakeEngine) Play() error {
	f.record("Play")
	f.state = model.StatePlaying
	return nil
}

func (f *fakeEngine) Pause() error {
	f.record("Pause")
	f.state = model.StatePaused
	return nil
}

func (f *fakeEngine) Stop() error {
	f.record("Stop")
	f.state = model.StateStopped
	return f.stopErr
}

func (f *fakeEngine) IsPlaying() (bool, error) {
	f.record("IsPlaying")
	return f.state == model.StatePlaying, nil
}

func (f *fakeEngine) State() (model.PlaybackState, error) {
	f.record("State")
	return f.state, f.stateErr
}

func (f *fakeEngine) SetVolume(volume int) error {
	f.record(fmt.Sprintf("SetVolume %d", volume))
	f.volumes = append(f.volumes, volume)
	return nil
}

func (f *fakeEngine) TimeMs() (int, error) {
	f.record("TimeMs")
	return f.timeMs, nil
}

func (f *fakeEngine) SetTimeMs(ms int) error {
	f.record(fmt.Sprintf("SetTimeMs %d", ms))
	f.seeks = append(f.seeks, ms)
	return nil
}

func (f *fakeEngine) DurationMs() (int, error) {
	f.record("DurationMs")
	return f.durationMs, nil
}

func (f *fakeEngine) BindSurface(h surface.Handle) error {
	f.record("BindSurface " + h.String())
	return nil
}

func (f *fakeEngine) Close() error {
	f.record("Close")
	return nil
}

// fakeView holds widget state like the real transport controls
type fakeView struct {
	label     model.ButtonLabel
	seek      float64
	timestamp string
	writes    int
}

func newFakeView() *fakeView {
	return &fakeView{label: model.LabelPlay, timestamp: model.ZeroTimestamp}
}

func (v *fakeView) SetPlayPauseLabel(label model.ButtonLabel) {
	v.label = label
	v.writes++
}

func (v *fakeView) SetSeekPosition(percent float64) {
	v.seek = percent
	v.writes++
}

func (v *fakeView) SeekPosition() float64 { return v.seek }

func (v *fakeView) SetTimestamp(text string) {
	v.timestamp = text
	v.writes++
}
