package particles

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Theme selects the colour palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ErrUnknownTheme is returned when a theme name is not recognised.
var ErrUnknownTheme = errors.New("unknown theme")

// ParseTheme maps a case-insensitive name to a Theme.
func ParseTheme(name string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(name))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTheme, name)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Palette holds the colours used to draw one frame.
type Palette struct {
	Point      color.NRGBA // disc fill, fixed opacity
	Line       color.NRGBA // link RGB; alpha comes from distance
	AlphaScale float64     // link alpha at distance 0
	Background color.NRGBA
}

var palettes = map[Theme]Palette{
	ThemeDark: {
		Point:      color.NRGBA{R: 255, G: 79, B: 163, A: 191},
		Line:       color.NRGBA{R: 255, G: 216, B: 77, A: 255},
		AlphaScale: 0.36,
		Background: color.NRGBA{R: 0x0b, G: 0x0b, B: 0x12, A: 255},
	},
	ThemeLight: {
		Point:      color.NRGBA{R: 255, G: 79, B: 163, A: 153},
		Line:       color.NRGBA{R: 255, G: 183, B: 3, A: 255},
		AlphaScale: 0.26,
		Background: color.NRGBA{R: 0xf7, G: 0xf4, B: 0xee, A: 255},
	},
}

// PaletteFor returns the palette of t. Anything other than ThemeDark gets the
// light palette.
func PaletteFor(t Theme) Palette {
	if t == ThemeDark {
		return palettes[ThemeDark]
	}
	return palettes[ThemeLight]
}

// LinkAlpha returns the stroke alpha for two particles d pixels apart and
// whether they are linked at all.
func (p Palette) LinkAlpha(d float64) (float64, bool) {
	if d > LinkDistance || math.IsNaN(d) {
		return 0, false
	}
	return (1 - d/LinkDistance) * p.AlphaScale, true
}

// LinkColor returns the line colour with the given alpha in [0, 1].
func (p Palette) LinkColor(alpha float64) color.NRGBA {
	c := p.Line
	c.A = uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return c
}
