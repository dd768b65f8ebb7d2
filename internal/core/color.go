package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

// Predefined colors.
var (
	ColorBlue  = RGB{R: 0x00, G: 0x00, B: 0xFF}
	ColorBlack = RGB{R: 0x00, G: 0x00, B: 0x00}
	ColorWhite = RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	ColorGray  = RGB{R: 0x8A, G: 0x8A, B: 0x8A}

	// DefaultShapeColor is the color every shape starts with.
	DefaultShapeColor = ColorBlue
)

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseHex parses a "#rgb" or "#rrggbb" color string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Style describes the colors of a single screen cell.
// A zero Style renders with the terminal's default colors.
type Style struct {
	FG, BG       RGB
	HasFG, HasBG bool
}

// Foreground returns a style with only the foreground color set.
func Foreground(c RGB) Style {
	return Style{FG: c, HasFG: true}
}

// WithBackground returns a copy of the style with the background set.
func (s Style) WithBackground(c RGB) Style {
	s.BG = c
	s.HasBG = true
	return s
}
