package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Predefined colors
var (
	White      = colorful.Color{R: 1, G: 1, B: 1}
	Black      = colorful.Color{}
	Night      = MustHex("#0b0d17")
	StatusText = MustHex("#9aa5ce")
)

// MustHex parses a #rrggbb literal, panics on malformed input
// Intended for package-level color constants
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad color literal %q: %v", s, err))
	}
	return c
}

// Fade blends from base toward c by t, t clamped to [0, 1]
func Fade(base, c colorful.Color, t float64) colorful.Color {
	return base.BlendRgb(c, clamp01(t)).Clamped()
}

// ToTcell converts a color to a tcell true color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
