package engine

// Package engine wraps external media engines behind a single Engine
// interface. The default backend drives an mpv child process over its
// JSON-IPC socket; building with -tags vlc adds a libVLC backend.
