package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Volume bounds
const (
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 100
)

// SessionIDPrefix prefixes every generated session ID
const SessionIDPrefix = "session-"

// Session holds the currently loaded media
type Session struct {
	ID          string // regenerated on every load
	Path        string // path of the loaded media
	MediaLoaded bool   // true once a file was handed to the engine
	Volume      int    // 0 to 100
}

// NewSession creates an empty session with the default volume
func NewSession() *Session {
	return &Session{
		ID:     generateSessionID(),
		Volume: DefaultVolume,
	}
}

// Load replaces the media handle of the session
func (s *Session) Load(path string) {
	s.ID = generateSessionID()
	s.Path = path
	s.MediaLoaded = true
}

// SetVolume stores the volume clamped to 0-100 and returns the stored value
func (s *Session) SetVolume(volume int) int {
	s.Volume = ClampVolume(volume)
	return s.Volume
}

// GetDisplayTitle returns the file name without extension, or "" if nothing is loaded
func (s Session) GetDisplayTitle() string {
	if !s.MediaLoaded || s.Path == "" {
		return ""
	}

	// Support both / and \ separators
	parts := strings.FieldsFunc(s.Path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return ""
	}
	name := parts[len(parts)-1]
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ClampVolume limits a volume to the 0-100 range
func ClampVolume(volume int) int {
	if volume < MinVolume {
		return MinVolume
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}

// generateSessionID generates a time-ordered session ID using UUID v7
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SessionIDPrefix + id.String()
}
