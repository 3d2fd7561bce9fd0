package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MealFold palette. Greens carry the brand; the warm off-white background
// keeps recipe text comfortable to read in the light variant.
var (
	colorHerbGreen    = color.RGBA{R: 56, G: 142, B: 60, A: 255}  // primary actions
	colorSavedGreen   = color.RGBA{R: 46, G: 160, B: 67, A: 255}  // saved / planned
	colorErrorRed     = color.RGBA{R: 183, G: 28, B: 28, A: 255}  // errors
	colorUnsavedAmber = color.RGBA{R: 255, G: 193, B: 7, A: 255}  // unsaved changes
	colorWarmPaper    = color.RGBA{R: 252, G: 250, B: 246, A: 255}
	colorDarkSlate    = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	colorInkText      = color.RGBA{R: 33, G: 33, B: 33, A: 255}
)

// compactSizes shrinks paddings and text so the planner grid fits a full
// week on a laptop screen without scrolling. Sizes not listed here keep
// their defaults.
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// CompactTheme applies the MealFold palette on top of reduced paddings and
// font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorHerbGreen
	case theme.ColorNameSuccess:
		return colorSavedGreen
	case theme.ColorNameError:
		return colorErrorRed
	case theme.ColorNameWarning:
		return colorUnsavedAmber
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return colorDarkSlate
		}
		return colorWarmPaper
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.White
		}
		return colorInkText
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return theme.DefaultTheme().Size(name)
}
