// Package termcanvas rasterizes Canvas calls onto a grid of terminal cells.
//
// Surface coordinates are scaled onto the grid by a fixed cell size. Filled
// rects paint cell backgrounds, rects thinner than half a cell become line
// glyphs, and text is placed one rune per column. Rotations cannot be
// represented on a cell grid; fills issued while rotated are dropped.
package termcanvas
