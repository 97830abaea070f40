package termcanvas

import (
	"math"

	"github.com/grindlemire/borealis"
	"github.com/grindlemire/borealis/internal/style"
	"github.com/mattn/go-runewidth"
)

type transform struct {
	tx, ty  float64
	sx, sy  float64
	rotated bool
}

func (t transform) apply(x, y float64) (float64, float64) {
	return t.tx + x*t.sx, t.ty + y*t.sy
}

// Canvas implements borealis.Canvas on a cell Buffer.
type Canvas struct {
	buf        *Buffer
	cellWidth  float64
	cellHeight float64
	background style.Color

	state transform
	stack []transform
}

var _ borealis.Canvas = (*Canvas)(nil)

// New creates a canvas of cols x rows cells mapping a surface of
// surfaceWidth x surfaceHeight units.
func New(cols, rows, surfaceWidth, surfaceHeight int, background style.Color) *Canvas {
	c := &Canvas{
		buf:        NewBuffer(cols, rows, background),
		background: background,
	}
	c.setScale(cols, rows, surfaceWidth, surfaceHeight)
	c.state = transform{sx: 1, sy: 1}
	return c
}

func (c *Canvas) setScale(cols, rows, surfaceWidth, surfaceHeight int) {
	c.cellWidth = float64(surfaceWidth) / float64(max(cols, 1))
	c.cellHeight = float64(surfaceHeight) / float64(max(rows, 1))
}

// Resize replaces the grid and the surface mapping and clears the canvas.
func (c *Canvas) Resize(cols, rows, surfaceWidth, surfaceHeight int) {
	c.buf = NewBuffer(cols, rows, c.background)
	c.setScale(cols, rows, surfaceWidth, surfaceHeight)
	c.Reset()
}

// Reset clears the grid and the transform stack.
func (c *Canvas) Reset() {
	c.buf.Clear(c.background)
	c.state = transform{sx: 1, sy: 1}
	c.stack = c.stack[:0]
}

// Buffer returns the cell grid.
func (c *Canvas) Buffer() *Buffer {
	return c.buf
}

// Save implements borealis.Canvas.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements borealis.Canvas. An unbalanced Restore is ignored.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate implements borealis.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.tx += dx * c.state.sx
	c.state.ty += dy * c.state.sy
}

// Scale implements borealis.Canvas.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.sx *= sx
	c.state.sy *= sy
}

// Rotate implements borealis.Canvas. Any rotation other than zero marks the
// state as unrepresentable until the next Restore.
func (c *Canvas) Rotate(radians float64) {
	if radians != 0 {
		c.state.rotated = true
	}
}

// cells maps a surface rect onto the grid. Edges are rounded to the
// nearest cell; a non-empty rect always covers at least one cell.
func (c *Canvas) cells(r borealis.Rect) borealis.Rect {
	x0, y0 := c.state.apply(float64(r.X), float64(r.Y))
	x1, y1 := c.state.apply(float64(r.Right()), float64(r.Bottom()))
	col0, row0 := int(math.Round(x0/c.cellWidth)), int(math.Round(y0/c.cellHeight))
	col1, row1 := int(math.Round(x1/c.cellWidth)), int(math.Round(y1/c.cellHeight))
	if col1 <= col0 {
		col1 = col0 + 1
	}
	if row1 <= row0 {
		row1 = row0 + 1
	}
	return borealis.NewRect(col0, row0, col1-col0, row1-row0)
}

// point maps a surface point to the cell containing it.
func (c *Canvas) point(x, y int) (col, row int) {
	px, py := c.state.apply(float64(x), float64(y))
	return int(math.Floor(px / c.cellWidth)), int(math.Floor(py / c.cellHeight))
}

// FillRect implements borealis.Canvas. Rects thinner than half a cell are
// drawn as line glyphs over the existing background.
func (c *Canvas) FillRect(r borealis.Rect, col borealis.Color) {
	if c.state.rotated || col.A <= 0 || r.IsEmpty() {
		return
	}
	w := float64(r.Width) * c.state.sx
	h := float64(r.Height) * c.state.sy
	cr := c.cells(r)

	switch {
	case h < c.cellHeight/2 && w >= c.cellWidth:
		c.buf.Glyph(cr, '─', col)
	case w < c.cellWidth/2 && h >= c.cellHeight:
		c.buf.Glyph(cr, '│', col)
	default:
		c.buf.Paint(cr, col)
	}
}

// StrokeRect implements borealis.Canvas with box-drawing glyphs.
func (c *Canvas) StrokeRect(r borealis.Rect, col borealis.Color, _ int) {
	if c.state.rotated || col.A <= 0 || r.IsEmpty() {
		return
	}
	cr := c.cells(r)
	left, top := cr.X, cr.Y
	right, bottom := cr.Right()-1, cr.Bottom()-1

	for x := left + 1; x < right; x++ {
		c.glyphAt(x, top, '─', col)
		c.glyphAt(x, bottom, '─', col)
	}
	for y := top + 1; y < bottom; y++ {
		c.glyphAt(left, y, '│', col)
		c.glyphAt(right, y, '│', col)
	}
	c.glyphAt(left, top, '┌', col)
	c.glyphAt(right, top, '┐', col)
	c.glyphAt(left, bottom, '└', col)
	c.glyphAt(right, bottom, '┘', col)
}

func (c *Canvas) glyphAt(x, y int, r rune, col borealis.Color) {
	c.buf.Glyph(borealis.NewRect(x, y, 1, 1), r, col)
}

// FillCircle implements borealis.Canvas as a single dot at the center.
func (c *Canvas) FillCircle(cx, cy, _ int, col borealis.Color) {
	if col.A <= 0 {
		return
	}
	x, y := c.point(cx, cy)
	c.glyphAt(x, y, '●', col)
}

// Text implements borealis.Canvas. The font size only decides visibility:
// runs smaller than one unit are skipped.
func (c *Canvas) Text(x, y int, text string, ts borealis.TextStyle) {
	if ts.Size*c.state.sy < 1 || ts.Color.A <= 0 || text == "" {
		return
	}
	col, row := c.point(x, y)
	switch ts.Align {
	case borealis.AlignCenter:
		col -= runewidth.StringWidth(text) / 2
	case borealis.AlignRight:
		col -= runewidth.StringWidth(text)
	}
	if ts.Baseline == borealis.BaselineBottom {
		row--
	}
	c.buf.SetString(col, row, text, ts.Color.Over)
}

// Image implements borealis.Canvas with a shaded placeholder.
func (c *Canvas) Image(r borealis.Rect, _ borealis.ImageSource) {
	if c.state.rotated || r.IsEmpty() {
		return
	}
	c.buf.Glyph(c.cells(r), '░', style.RGB(160, 160, 160))
}
