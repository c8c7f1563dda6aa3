package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SettingsProvider answers appearance queries from the Fyne settings and a
// palette. It is the provider to register when no native driver is present.
type SettingsProvider struct {
	app     fyne.App
	palette *Palette
}

// NewSettingsProvider creates a provider over the given app. A nil palette
// falls back to DefaultPalette.
func NewSettingsProvider(app fyne.App, palette *Palette) *SettingsProvider {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &SettingsProvider{app: app, palette: palette}
}

func (p *SettingsProvider) Dark() (dark, ok bool) {
	if p.app == nil {
		return false, false
	}
	return p.app.Settings().ThemeVariant() == theme.VariantDark, true
}

func (p *SettingsProvider) SystemColor(name string) (color.Color, bool) {
	dark, ok := p.Dark()
	if !ok {
		return nil, false
	}
	return p.palette.Color(name, dark)
}
