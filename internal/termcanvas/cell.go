package termcanvas

import (
	"github.com/grindlemire/borealis/internal/style"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. Wide runes occupy two cells; the second is a
// continuation with Width 0.
type Cell struct {
	Rune  rune
	Fg    style.Color
	Bg    style.Color
	Width uint8
}

// blank returns an empty cell on bg.
func blank(bg style.Color) Cell {
	return Cell{Rune: ' ', Fg: bg, Bg: bg, Width: 1}
}

// IsContinuation reports whether the cell is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// runeWidth returns the number of cells r occupies, at least 1.
func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w == 2 {
		return 2
	}
	return 1
}
