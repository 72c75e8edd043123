package model

import (
	"strings"
	"testing"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.MediaLoaded {
		t.Error("New session should not have media loaded")
	}
	if s.Volume != DefaultVolume {
		t.Errorf("Expected default volume %d, got %d", DefaultVolume, s.Volume)
	}
	if !strings.HasPrefix(s.ID, SessionIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", SessionIDPrefix, s.ID)
	}
}

func TestSession_Load(t *testing.T) {
	s := NewSession()
	firstID := s.ID

	s.Load("/videos/holiday.mp4")

	if !s.MediaLoaded {
		t.Error("Expected media to be loaded")
	}
	if s.Path != "/videos/holiday.mp4" {
		t.Errorf("Expected path '/videos/holiday.mp4', got '%s'", s.Path)
	}
	if s.ID == firstID {
		t.Error("Expected a new session ID after load")
	}

	// Check UUID format (session- + 36 chars for UUID)
	if len(s.ID) != len(SessionIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(SessionIDPrefix)+36, len(s.ID), s.ID)
	}
}

func TestSession_SetVolume(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{37, 37},
		{100, 100},
		{150, 100},
	}

	for _, test := range tests {
		s := NewSession()
		got := s.SetVolume(test.in)
		if got != test.expected || s.Volume != test.expected {
			t.Errorf("SetVolume(%d) = %d (stored %d), expected %d", test.in, got, s.Volume, test.expected)
		}
	}
}

func TestSession_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		path     string
		loaded   bool
		expected string
	}{
		{"/videos/holiday.mp4", true, "holiday"},
		{`C:\Users\me\Videos\clip.avi`, true, "clip"},
		{"movie", true, "movie"},
		{"/videos/holiday.mp4", false, ""},
		{"", true, ""},
	}

	for _, test := range tests {
		s := &Session{Path: test.path, MediaLoaded: test.loaded}
		result := s.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with path=%q loaded=%v = %q, expected %q", test.path, test.loaded, result, test.expected)
		}
	}
}
