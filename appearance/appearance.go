// Package appearance exposes the effective appearance of the application:
// whether it is dark, and the named system colors that go with it. The
// information comes from a registered Provider; when none is registered the
// queries report "not available" rather than failing.
package appearance

import "image/color"

// Provider supplies appearance information. The native driver registers a
// provider when present; SettingsProvider covers the plain Fyne case.
type Provider interface {
	// Dark reports whether the effective appearance is dark. ok is false
	// when the provider cannot tell.
	Dark() (dark, ok bool)
	// SystemColor returns the named system color for the effective
	// appearance, if known.
	SystemColor(name string) (color.Color, bool)
}

var current Provider

// Register installs the appearance provider. Passing nil removes it.
func Register(p Provider) {
	current = p
}

// Current returns the registered provider, or nil.
func Current() Provider {
	return current
}

// EffectiveDark reports whether the effective appearance is dark. ok is
// false when no provider is registered or the provider cannot tell.
func EffectiveDark() (dark, ok bool) {
	if current == nil {
		return false, false
	}
	return current.Dark()
}

// SystemColor returns the named system color for the effective appearance.
func SystemColor(name string) (color.Color, bool) {
	if current == nil {
		return nil, false
	}
	return current.SystemColor(name)
}
