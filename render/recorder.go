package render

// Recorder is a Surface that keeps the draw calls of the latest frame
// Used by tests and headless runs
type Recorder struct {
	Clears int
	Frame  []Glyph
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear starts a new frame
func (r *Recorder) Clear() {
	r.Clears++
	r.Frame = r.Frame[:0]
}

// DrawGlyph records g
func (r *Recorder) DrawGlyph(g Glyph) {
	r.Frame = append(r.Frame, g)
}
