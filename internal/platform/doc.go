package platform

// Package platform contains OS integration glue: the default videos
// directory, supported video extensions and revealing files in the system
// file manager.
