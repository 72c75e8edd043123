package controller

import "github.com/ytget/video-player/internal/model"

// View is the set of transport widgets the controller drives.
// All methods are called from the UI thread.
type View interface {
	SetPlayPauseLabel(label model.ButtonLabel)
	SetSeekPosition(percent float64)
	SeekPosition() float64
	SetTimestamp(text string)
}

// DragState tracks whether the user is moving the seek bar
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// String returns the name of the drag state
func (ds DragState) String() string {
	if ds == DragDragging {
		return "dragging"
	}
	return "idle"
}
