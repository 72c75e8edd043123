package model

// PlaybackState represents the engine's playback state
type PlaybackState string

const (
	// StateStopped means nothing is playing (idle, ended or never started)
	StateStopped PlaybackState = "Stopped"

	// StatePlaying means media is playing
	StatePlaying PlaybackState = "Playing"

	// StatePaused means media is loaded and paused
	StatePaused PlaybackState = "Paused"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if media is loaded in the engine (playing or paused)
func (ps PlaybackState) IsActive() bool {
	return ps == StatePlaying || ps == StatePaused
}

// ButtonLabel is the label of the play/pause button
type ButtonLabel string

const (
	LabelPlay  ButtonLabel = "Play"
	LabelPause ButtonLabel = "Pause"
)

// String returns the string representation of ButtonLabel
func (bl ButtonLabel) String() string {
	return string(bl)
}
