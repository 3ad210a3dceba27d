package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// fontTheme is the default theme with a replacement text font
type fontTheme struct {
	fyne.Theme
	font fyne.Resource
}

// NewFontTheme returns the default theme rendering regular, bold and
// italic text with the given TrueType font.
func NewFontTheme(name string, data []byte) fyne.Theme {
	return &fontTheme{
		Theme: theme.DefaultTheme(),
		font:  fyne.NewStaticResource(name, data),
	}
}

func (t *fontTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace || style.Symbol {
		return t.Theme.Font(style)
	}
	return t.font
}
