package termcanvas

import (
	"strings"

	"github.com/grindlemire/borealis/internal/layout"
	"github.com/grindlemire/borealis/internal/style"
)

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a width x height grid cleared to bg.
func NewBuffer(width, height int, bg style.Color) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{cells: make([]Cell, width*height), width: width, height: height}
	b.Clear(bg)
	return b
}

// Clear resets every cell to a blank on bg.
func (b *Buffer) Clear(bg style.Color) {
	c := blank(bg)
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Size returns the grid dimensions in cells.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the grid bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() layout.Rect {
	return layout.NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune writes r at (x, y) in fg, keeping the cell background. Wide runes
// that would be split, or that overlap another wide rune, are cleared first.
func (b *Buffer) SetRune(x, y int, r rune, fg style.Color) {
	if b.idx(x, y) < 0 {
		return
	}
	width := runeWidth(r)
	cur := b.Cell(x, y)

	// Writing over either half of a wide rune clears the whole rune
	if cur.IsContinuation() || cur.Width == 2 {
		b.clearWideAt(x, y)
	}
	if width == 2 {
		if x+1 >= b.width {
			b.setCell(x, y, Cell{Rune: ' ', Fg: fg, Bg: cur.Bg, Width: 1})
			return
		}
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideAt(x+1, y)
		}
	}

	bg := b.Cell(x, y).Bg
	b.setCell(x, y, Cell{Rune: r, Fg: fg, Bg: bg, Width: uint8(width)})
	if width == 2 {
		b.setCell(x+1, y, Cell{Fg: fg, Bg: b.Cell(x+1, y).Bg, Width: 0})
	}
}

// clearWideAt blanks the wide rune covering (x, y), keeping backgrounds.
func (b *Buffer) clearWideAt(x, y int) {
	cur := b.Cell(x, y)
	start := x
	if cur.IsContinuation() {
		start = x - 1
	}
	for i := start; i <= start+1; i++ {
		if b.idx(i, y) >= 0 {
			b.setCell(i, y, blank(b.Cell(i, y).Bg))
		}
	}
}

// SetString writes s starting at (x, y) and returns the columns consumed.
// Runes left of the grid are skipped; writing stops at the right edge.
func (b *Buffer) SetString(x, y int, s string, fg func(bg style.Color) style.Color) int {
	if y < 0 || y >= b.height {
		return 0
	}
	total := 0
	curX := x
	for _, r := range s {
		w := runeWidth(r)
		if curX >= b.width {
			break
		}
		if curX < 0 {
			curX += w
			continue
		}
		if w == 2 && curX+1 >= b.width {
			break
		}
		b.SetRune(curX, y, r, fg(b.Cell(curX, y).Bg))
		curX += w
		total += w
	}
	return total
}

// Paint composites c over the background of every cell in r. An opaque
// color erases the runes underneath; a translucent one tints them.
func (b *Buffer) Paint(r layout.Rect, c style.Color) {
	r = r.Intersect(b.Rect())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cell := b.Cell(x, y)
			if c.A >= 1 {
				b.setCell(x, y, blank(c))
				continue
			}
			cell.Bg = c.Over(cell.Bg)
			cell.Fg = c.Over(cell.Fg)
			b.setCell(x, y, cell)
		}
	}
}

// Glyph writes r in every cell of rect using the color composited over each
// cell background.
func (b *Buffer) Glyph(rect layout.Rect, r rune, c style.Color) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, c.Over(b.Cell(x, y).Bg))
		}
	}
}

// Line returns row y as plain text, continuation cells omitted.
func (b *Buffer) Line(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.Cell(x, y)
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
