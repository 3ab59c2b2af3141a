package render

import "github.com/lucasb-eyer/go-colorful"

// Glyph is one draw command: a text glyph centered at (X, Y) in pixel space
type Glyph struct {
	Text  string
	X, Y  float64
	Angle float64 // radians
	Size  float64 // font size in pixels
	Alpha float64 // global alpha in [0, 1]

	Fill        colorful.Color
	Shadow      colorful.Color
	ShadowAlpha float64
	Blur        float64
}

// Surface is the 2D raster target a frame is drawn onto
type Surface interface {
	// Clear erases the previous frame
	Clear()
	// DrawGlyph draws one glyph with its transform, alpha and shadow
	DrawGlyph(g Glyph)
}
