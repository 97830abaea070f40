package layout

// Edges holds a margin or padding per side of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric uses v above and below, h left and right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL lists the sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Leading is the side a track along axis starts from.
func (e Edges) Leading(axis Axis) int {
	if axis == Horizontal {
		return e.Left
	}
	return e.Top
}

// Trailing is the side a track along axis runs into.
func (e Edges) Trailing(axis Axis) int {
	if axis == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// Along sums both sides on axis.
func (e Edges) Along(axis Axis) int {
	return e.Leading(axis) + e.Trailing(axis)
}
