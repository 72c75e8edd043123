package model

// Package model defines the player's domain data: the playback session, the
// playback state reported by the engine and the transport state shown by the
// controls. Structures are plain values so the UI can render them directly.
