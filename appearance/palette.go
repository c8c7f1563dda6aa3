package appearance

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Palette holds named system colors for the light and dark appearances.
// Color values are hex strings ("#rrggbb" or "#rrggbbaa").
type Palette struct {
	Light map[string]string `toml:"light"`
	Dark  map[string]string `toml:"dark"`
}

// LoadPalette reads a palette from a TOML file.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	return ParsePalette(data)
}

// ParsePalette decodes a palette from TOML.
func ParsePalette(data []byte) (*Palette, error) {
	var p Palette
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	return &p, nil
}

// Color resolves the named color for the given appearance.
func (p *Palette) Color(name string, dark bool) (color.Color, bool) {
	m := p.Light
	if dark {
		m = p.Dark
	}
	hex, found := m[name]
	if !found {
		return nil, false
	}
	c, err := parseHexColor(hex)
	if err != nil {
		return nil, false
	}
	return c, true
}

// DefaultPalette covers the handful of system colors the widgets in this
// module consult. Applications with richer needs load their own TOML file.
func DefaultPalette() *Palette {
	return &Palette{
		Light: map[string]string{
			"controlAccent":       "#007aff",
			"selectedContentText": "#ffffff",
			"separator":           "#d1d1d6",
			"secondaryLabel":      "#3c3c4399",
		},
		Dark: map[string]string{
			"controlAccent":       "#0a84ff",
			"selectedContentText": "#ffffff",
			"separator":           "#38383a",
			"secondaryLabel":      "#ebebf599",
		},
	}
}

func parseHexColor(s string) (color.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	s = s[1:]

	var r, g, b, a uint8
	a = 0xff
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
