package layout

// Rect is a box in surface units. X and Y locate the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a Rect at (x, y) of the given size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right is the first column past the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks r by e on each side, clamping the size at zero.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(0, r.Width-e.Left-e.Right),
		Height: max(0, r.Height-e.Top-e.Bottom),
	}
}

// Outset grows r by e on each side. Focus highlights use it to surround a
// view's bounds.
func (r Rect) Outset(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// Intersect returns the area covered by both rects, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	right, bottom := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Start is the leading coordinate of r on axis.
func (r Rect) Start(axis Axis) int {
	if axis == Horizontal {
		return r.X
	}
	return r.Y
}

// Main is the size of r on axis.
func (r Rect) Main(axis Axis) int {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}
