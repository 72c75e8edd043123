package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func newCountingSlider() (*SeekSlider, *int, *int) {
	starts, ends := 0, 0
	s := NewSeekSlider()
	s.OnDragStart = func() { starts++ }
	s.OnDragEnd = func() { ends++ }
	s.Resize(fyne.NewSize(200, 30))
	return s, &starts, &ends
}

func TestNewSeekSlider(t *testing.T) {
	test.NewApp()
	s := NewSeekSlider()

	if s.Min != SeekMin || s.Max != SeekMax {
		t.Errorf("Expected range %d-%d, got %v-%v", SeekMin, SeekMax, s.Min, s.Max)
	}
	if s.Value != 0 {
		t.Errorf("Expected initial value 0, got %v", s.Value)
	}
	if s.Dragging() {
		t.Error("Expected slider not to be dragging")
	}
}

func TestSeekSlider_DragReportsOnce(t *testing.T) {
	test.NewApp()
	s, starts, ends := newCountingSlider()

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 10)}})
	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 10)}})

	if *starts != 1 {
		t.Errorf("Expected one drag start, got %d", *starts)
	}
	if !s.Dragging() {
		t.Error("Expected slider to be dragging")
	}

	s.DragEnd()

	if *ends != 1 {
		t.Errorf("Expected one drag end, got %d", *ends)
	}
	if s.Dragging() {
		t.Error("Expected drag to be over")
	}
}

func TestSeekSlider_DragEndWithoutDrag(t *testing.T) {
	test.NewApp()
	s, _, ends := newCountingSlider()

	s.DragEnd()

	if *ends != 0 {
		t.Errorf("Expected no drag end, got %d", *ends)
	}
}

func TestSeekSlider_TapIsDrag(t *testing.T) {
	test.NewApp()
	s, starts, ends := newCountingSlider()

	s.Tapped(&fyne.PointEvent{Position: fyne.NewPos(100, 10)})

	if *starts != 1 || *ends != 1 {
		t.Errorf("Expected tap to report start and end once, got %d/%d", *starts, *ends)
	}
}

func TestSeekSlider_NilCallbacks(t *testing.T) {
	test.NewApp()
	s := NewSeekSlider()

	s.beginDrag()
	s.endDrag()

	if s.Dragging() {
		t.Error("Expected drag to be over")
	}
}

func TestSeekSlider_ArrowKeysSeek(t *testing.T) {
	test.NewApp()
	s, starts, ends := newCountingSlider()
	s.SetValue(50)

	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})

	if s.Value <= 50 {
		t.Errorf("Expected thumb to move right of 50, got %v", s.Value)
	}
	if *starts != 1 || *ends != 1 {
		t.Errorf("Expected arrow key to report start and end once, got %d/%d", *starts, *ends)
	}

	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	if *starts != 2 || *ends != 2 {
		t.Errorf("Expected second arrow key to seek again, got %d/%d", *starts, *ends)
	}
}

func TestSeekSlider_OtherKeysDoNotSeek(t *testing.T) {
	test.NewApp()
	s, starts, ends := newCountingSlider()

	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyA})

	if *starts != 0 || *ends != 0 {
		t.Errorf("Expected no seek for a letter key, got %d/%d", *starts, *ends)
	}
}
