package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Colors shared by the theme and the video window
var (
	VideoBackground   = color.Black
	ControlBackground = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
)

// PlayerTheme is a compact theme with a light gray control panel and an
// accent color for the seek and volume sliders
type PlayerTheme struct{}

// NewPlayerTheme creates the player theme
func NewPlayerTheme() fyne.Theme {
	return &PlayerTheme{}
}

// Color returns theme colors
func (t *PlayerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 230, G: 81, B: 0, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		}
		return ControlBackground
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.White
		}
		return color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PlayerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PlayerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with reduced padding
func (t *PlayerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
