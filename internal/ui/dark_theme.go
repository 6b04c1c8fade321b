package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme is the browser's fixed dark look: graphite surfaces with a blue
// accent. The variant argument is ignored, the palette is always dark.
type DarkTheme struct{}

// NewDarkTheme creates the browser theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	case theme.ColorNameButton:
		return color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	case theme.ColorNameForeground:
		return color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	case theme.ColorNamePlaceHolder:
		return color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	case theme.ColorNamePrimary, theme.ColorNameSelection:
		return color.RGBA{R: 0x00, G: 0x7b, B: 0xff, A: 0xff}
	case theme.ColorNameHover:
		return color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	case theme.ColorNameSeparator:
		return color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff}
	case theme.ColorNameError:
		return color.RGBA{R: 0xb7, G: 0x1c, B: 0x1c, A: 0xff}
	case theme.ColorNameWarning:
		return color.RGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}
	}

	// Use the stock dark palette for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 8 // rounded URL bar
	case theme.SizeNameSelectionRadius:
		return 3
	}
	return theme.DefaultTheme().Size(name)
}
