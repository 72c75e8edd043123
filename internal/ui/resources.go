package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "video-player.png"
)

// LoadLogoResource loads the application icon from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// FallbackIcon is used when the icon file is not shipped next to the binary
func FallbackIcon() fyne.Resource {
	return theme.MediaVideoIcon()
}
