package core

import "math"

// Font selects the face and pixel size used by DrawText.
type Font struct {
	Family string
	Size   float64
}

// Surface is a 2D drawing target measured in playfield pixels.
// Games draw through it without knowing whether the destination is a
// terminal, a window, or a recorder.
type Surface interface {
	// ClearRect erases a region of the surface.
	ClearRect(x, y, w, h float64)

	// FillRect draws a filled rectangle. Transparent colors draw nothing.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle draws a filled circle centred on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// DrawText draws text whose baseline starts at (x, y).
	DrawText(x, y float64, text string, font Font, c Color)
}

// Glyphs used when rasterising shapes onto terminal cells.
const (
	FillGlyph = '█'
	DotGlyph  = '●'
)

// ScreenSurface scales a logical pixel playfield onto a cell Screen.
// The x and y axes scale independently so the whole playfield always fits.
type ScreenSurface struct {
	screen   *Screen
	logicalW float64
	logicalH float64
}

// NewScreenSurface wraps dst so that a logicalW x logicalH playfield covers it.
func NewScreenSurface(dst *Screen, logicalW, logicalH float64) *ScreenSurface {
	return &ScreenSurface{
		screen:   dst,
		logicalW: logicalW,
		logicalH: logicalH,
	}
}

// Screen returns the underlying cell buffer.
func (s *ScreenSurface) Screen() *Screen {
	return s.screen
}

// scale returns the current cells-per-pixel factors.
func (s *ScreenSurface) scale() (sx, sy float64) {
	if s.logicalW <= 0 || s.logicalH <= 0 {
		return 1, 1
	}
	return float64(s.screen.Width()) / s.logicalW, float64(s.screen.Height()) / s.logicalH
}

// cellSpan converts a pixel interval into a half-open cell interval that is
// at least one cell wide.
func cellSpan(lo, hi, scale float64) (int, int) {
	a := Round(lo * scale)
	b := Round(hi * scale)
	if b <= a {
		b = a + 1
	}
	return a, b
}

// CellRect converts a pixel rectangle to the cell rectangle it covers.
func (s *ScreenSurface) CellRect(x, y, w, h float64) Rect {
	sx, sy := s.scale()
	x0, x1 := cellSpan(x, x+w, sx)
	y0, y1 := cellSpan(y, y+h, sy)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ClearRect blanks every cell covered by the region.
func (s *ScreenSurface) ClearRect(x, y, w, h float64) {
	s.screen.DrawRect(s.CellRect(x, y, w, h), ' ', ColorDefault)
}

// FillRect fills every cell covered by the rectangle.
func (s *ScreenSurface) FillRect(x, y, w, h float64, c Color) {
	if !c.Visible() {
		return
	}
	s.screen.DrawRect(s.CellRect(x, y, w, h), FillGlyph, c)
}

// FillCircle fills the cells whose centres lie inside the circle. A circle
// smaller than a cell is drawn as a single dot.
func (s *ScreenSurface) FillCircle(cx, cy, r float64, c Color) {
	if !c.Visible() {
		return
	}
	sx, sy := s.scale()

	bounds := s.CellRect(cx-r, cy-r, 2*r, 2*r)
	filled := 0
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if math.Hypot(px-cx, py-cy) <= r {
				s.screen.SetCell(x, y, FillGlyph, c)
				filled++
			}
		}
	}
	if filled <= 1 {
		s.screen.SetCell(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), DotGlyph, c)
	}
}

// DrawText places text on the row containing the vertical middle of the
// glyphs, starting at the column under x.
func (s *ScreenSurface) DrawText(x, y float64, text string, font Font, c Color) {
	sx, sy := s.scale()
	col := Round(x * sx)
	row := int(math.Floor((y - font.Size/2) * sy))
	if row < 0 {
		row = 0
	}
	s.screen.DrawTextColor(col, row, text, c)
}

// DrawKind identifies a recorded drawing operation.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawRect
	DrawCircle
	DrawText
)

// DrawOp is one recorded drawing call.
type DrawOp struct {
	Kind       DrawKind
	X, Y, W, H float64 // Rect/clear geometry, or circle centre in X/Y
	R          float64 // Circle radius
	Text       string
	Font       Font
	Color      Color
}

// DrawList is a Surface that records drawing calls so they can be inspected
// or replayed onto another surface later.
type DrawList struct {
	ops []DrawOp
}

// NewDrawList creates an empty recorder.
func NewDrawList() *DrawList {
	return &DrawList{ops: make([]DrawOp, 0, 64)}
}

// ClearRect records a clear.
func (d *DrawList) ClearRect(x, y, w, h float64) {
	d.ops = append(d.ops, DrawOp{Kind: DrawClear, X: x, Y: y, W: w, H: h})
}

// FillRect records a filled rectangle.
func (d *DrawList) FillRect(x, y, w, h float64, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: DrawRect, X: x, Y: y, W: w, H: h, Color: c})
}

// FillCircle records a filled circle.
func (d *DrawList) FillCircle(cx, cy, r float64, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: DrawCircle, X: cx, Y: cy, R: r, Color: c})
}

// DrawText records a text draw.
func (d *DrawList) DrawText(x, y float64, text string, font Font, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: DrawText, X: x, Y: y, Text: text, Font: font, Color: c})
}

// Ops returns the recorded operations in call order.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

// Reset discards all recorded operations, keeping capacity.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues every recorded operation against dst.
func (d *DrawList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case DrawClear:
			dst.ClearRect(op.X, op.Y, op.W, op.H)
		case DrawRect:
			dst.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case DrawCircle:
			dst.FillCircle(op.X, op.Y, op.R, op.Color)
		case DrawText:
			dst.DrawText(op.X, op.Y, op.Text, op.Font, op.Color)
		}
	}
}
