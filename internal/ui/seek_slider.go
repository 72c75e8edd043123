package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SeekSlider is a 0-100 slider that reports when the user grabs and releases
// it. The value is only read back on release, so OnChanged is left unused.
type SeekSlider struct {
	widget.Slider

	OnDragStart func()
	OnDragEnd   func()

	dragging bool
}

// NewSeekSlider creates a seek bar spanning 0-100 percent
func NewSeekSlider() *SeekSlider {
	s := &SeekSlider{}
	s.Min = SeekMin
	s.Max = SeekMax
	s.Step = SeekStep
	s.Orientation = widget.Horizontal
	s.ExtendBaseWidget(s)
	return s
}

// Dragged moves the thumb and reports the first movement as a drag start
func (s *SeekSlider) Dragged(e *fyne.DragEvent) {
	s.beginDrag()
	s.Slider.Dragged(e)
}

// DragEnd reports the release after the thumb has settled
func (s *SeekSlider) DragEnd() {
	s.Slider.DragEnd()
	s.endDrag()
}

// Tapped jumps to the tapped position; a click is a zero-length drag
func (s *SeekSlider) Tapped(e *fyne.PointEvent) {
	s.beginDrag()
	s.Slider.Tapped(e)
	s.endDrag()
}

// TypedKey moves the thumb with the arrow keys; each step seeks like a click
func (s *SeekSlider) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown:
		s.beginDrag()
		s.Slider.TypedKey(key)
		s.endDrag()
	default:
		s.Slider.TypedKey(key)
	}
}

// Dragging reports whether the thumb is held
func (s *SeekSlider) Dragging() bool {
	return s.dragging
}

func (s *SeekSlider) beginDrag() {
	if s.dragging {
		return
	}
	s.dragging = true
	if s.OnDragStart != nil {
		s.OnDragStart()
	}
}

func (s *SeekSlider) endDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.OnDragEnd != nil {
		s.OnDragEnd()
	}
}
