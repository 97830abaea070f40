// layout.go re-exports the geometry of internal/layout so views and
// backends outside the module can name it.
package borealis

import "github.com/grindlemire/borealis/internal/layout"

// Rect is a box in surface units.
type Rect = layout.Rect

// Edges holds a margin or padding per side.
type Edges = layout.Edges

// Axis is the main axis of a BoxLayout.
type Axis = layout.Axis

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// NewRect returns a Rect at (x, y) of the given size.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric uses v above and below, h left and right.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL lists the sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
