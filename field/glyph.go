package field

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/lumos/render"
)

// glyphs is the themed symbol set every particle draws from
var glyphs = [...]string{
	"📚", "🧬", "⚡", "🦉", "⚗️", "🕯️", "👓", "🦠", "🍂",
}

// glowPalette holds the explosion shadow colors, one is picked per particle per frame
var glowPalette = [...]colorful.Color{
	render.MustHex("#f1c40f"),
	render.MustHex("#2ecc71"),
	render.MustHex("#9b59b6"),
	render.MustHex("#3498db"),
}

// Glyphs returns a copy of the glyph set
func Glyphs() []string {
	out := make([]string, len(glyphs))
	copy(out, glyphs[:])
	return out
}

// GlowPalette returns a copy of the explosion glow palette
func GlowPalette() []colorful.Color {
	out := make([]colorful.Color, len(glowPalette))
	copy(out, glowPalette[:])
	return out
}
