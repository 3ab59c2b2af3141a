package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lumos/parameter"
)

// TerminalSurface draws glyphs onto a tcell screen
// The pixel viewport is the cell grid scaled by the cell size; each glyph lands in the cell containing its center
// Rotation cannot be expressed in a cell grid and is ignored
type TerminalSurface struct {
	screen     tcell.Screen
	cellW      float64
	cellH      float64
	glow       float64
	background colorful.Color
	baseStyle  tcell.Style
}

// NewTerminalSurface wraps screen; non-positive cell sizes and glow fall back to defaults
func NewTerminalSurface(screen tcell.Screen, cellW, cellH, glow float64) *TerminalSurface {
	if cellW <= 0 {
		cellW = parameter.DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = parameter.DefaultCellHeight
	}
	if glow < 0 {
		glow = parameter.DefaultGlowStrength
	}
	s := &TerminalSurface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		glow:   glow,
	}
	s.SetBackground(Night)
	return s
}

// SetBackground changes the clear color
func (s *TerminalSurface) SetBackground(c colorful.Color) {
	s.background = c
	s.baseStyle = tcell.StyleDefault.Background(ToTcell(c)).Foreground(ToTcell(White))
}

// Viewport returns the pixel size of the current cell grid
func (s *TerminalSurface) Viewport() (width, height float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// CellCenter converts a cell coordinate to the pixel position of its center
func (s *TerminalSurface) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// CellAt converts a pixel position to the containing cell
func (s *TerminalSurface) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// Clear fills the screen with the background color
func (s *TerminalSurface) Clear() {
	s.screen.Fill(' ', s.baseStyle)
}

// DrawGlyph maps alpha to foreground intensity and the shadow to a background tint
func (s *TerminalSurface) DrawGlyph(g Glyph) {
	if g.Alpha <= 0 || g.Text == "" {
		return
	}

	cols, rows := s.screen.Size()
	col, row := s.CellAt(g.X, g.Y)
	width := runewidth.StringWidth(g.Text)
	if width < 1 {
		width = 1
	}
	if col < 0 || row < 0 || row >= rows || col+width > cols {
		return
	}

	tint := g.Alpha * g.ShadowAlpha * s.glow
	fg := Fade(s.background, g.Fill, g.Alpha)
	bg := Fade(s.background, g.Shadow, tint)
	style := tcell.StyleDefault.
		Foreground(ToTcell(fg)).
		Background(ToTcell(bg)).
		Bold(g.Size >= parameter.BoldGlyphSize)

	runes := []rune(g.Text)
	s.screen.SetContent(col, row, runes[0], runes[1:], style)

	// Blur wider than a cell spills a half-strength halo into blank neighbors
	if g.Blur > s.cellW {
		halo := tcell.StyleDefault.Background(ToTcell(Fade(s.background, g.Shadow, tint/2)))
		s.haloCell(col-1, row, cols, halo)
		s.haloCell(col+width, row, cols, halo)
	}
}

func (s *TerminalSurface) haloCell(col, row, cols int, style tcell.Style) {
	if col < 0 || col >= cols {
		return
	}
	if mainc, _, _, _ := s.screen.GetContent(col, row); mainc != ' ' && mainc != 0 {
		return
	}
	s.screen.SetContent(col, row, ' ', nil, style)
}

// DrawStatus writes line on the bottom row, truncated to the screen width
func (s *TerminalSurface) DrawStatus(line string) {
	cols, rows := s.screen.Size()
	if rows == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(ToTcell(StatusText)).Background(ToTcell(Black))
	x := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if x+w > cols {
			break
		}
		s.screen.SetContent(x, rows-1, r, nil, style)
		x += w
	}
}

// Show presents the frame
func (s *TerminalSurface) Show() {
	s.screen.Show()
}
