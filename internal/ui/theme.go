package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BoardTheme defines a dark, broadcast-style theme for the board
type BoardTheme struct{}

// NewBoardTheme creates a new board theme
func NewBoardTheme() fyne.Theme {
	return &BoardTheme{}
}

// Color returns theme colors
func (t *BoardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 4, G: 30, B: 66, A: 255} // League navy
	case theme.ColorNameForeground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
	case theme.ColorNameError:
		return color.RGBA{R: 191, G: 13, B: 62, A: 255} // League red
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BoardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BoardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *BoardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16 // Larger base text for a TV-distance layout
	case theme.SizeNameHeadingText:
		return 22
	}

	return theme.DefaultTheme().Size(name)
}
