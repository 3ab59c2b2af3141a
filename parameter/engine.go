package parameter

import "time"

// Frame loop
const (
	// DefaultFPS matches a typical display refresh
	DefaultFPS = 60

	// InboxCapacity bounds input commands queued between frames
	InboxCapacity = 256
)

// FrameInterval returns the tick interval for the given rate, falling back to DefaultFPS
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Terminal cell geometry in pixels, used to map the cell grid to a pixel viewport
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0

	// DefaultGlowStrength scales the shadow tint painted into a glyph's cell background
	DefaultGlowStrength = 0.35

	// BoldGlyphSize is the size from which glyphs render bold
	BoldGlyphSize = 30.0
)
