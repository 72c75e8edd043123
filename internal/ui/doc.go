// Package ui contains the Fyne desktop shell of the player. The control window
// holds the seek bar, the transport buttons, the volume slider and the
// timestamp; a second window provides the native surface the media engine
// renders into. Widgets only forward events to the PlayerController and are
// updated by it through the View interface.
package ui
