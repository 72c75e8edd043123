package ui

import (
	"time"

	"github.com/ytget/video-player/internal/schedule"
)

// Window titles and sizing
const (
	ControlWindowWidth  float32 = 800
	ControlWindowHeight float32 = 600

	VideoWindowWidth  float32 = 960
	VideoWindowHeight float32 = 540

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)

// Slider ranges
const (
	SeekMin  = 0
	SeekMax  = 100
	SeekStep = 1

	VolumeMin  = 0
	VolumeMax  = 100
	VolumeStep = 1
)

// Layout sizing
const (
	TimestampLabelWidth float32 = 110
	VolumeSliderWidth   float32 = 160
)

// Delays
const (
	// PollInterval is the fixed delay between two transport refreshes
	PollInterval = schedule.DefaultInterval

	// SurfaceBindDelay gives the video window time to be mapped before its
	// native handle is read.
	SurfaceBindDelay = 100 * time.Millisecond
)

// Text fragments
const (
	TitleSeparator = " - "
)
