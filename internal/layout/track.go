package layout

// Track places consecutive slots along one axis of a content rect.
//
// Child sizes along the main axis are only known after the child has laid
// itself out, so placement is incremental: Slot hands out the rect for the
// next child assuming a tentative main size, and Advance moves the cursor
// past the size the child actually reported plus the gap before its
// successor.
type Track struct {
	axis    Axis
	content Rect
	cursor  int
	end     int
}

// NewTrack starts a track at the leading edge of content.
func NewTrack(axis Axis, content Rect) *Track {
	start := content.Start(axis)
	return &Track{axis: axis, content: content, cursor: start, end: start}
}

// Axis returns the main axis of the track.
func (t *Track) Axis() Axis {
	return t.axis
}

// Offset returns the current main-axis coordinate of the cursor.
func (t *Track) Offset() int {
	return t.cursor
}

// Slot returns the rect for the next child with the given main-axis size.
// The cross-axis size spans the content rect.
func (t *Track) Slot(mainSize int) Rect {
	if t.axis == Horizontal {
		return Rect{X: t.cursor, Y: t.content.Y, Width: mainSize, Height: t.content.Height}
	}
	return Rect{X: t.content.X, Y: t.cursor, Width: t.content.Width, Height: mainSize}
}

// Advance records a placed child of mainSize and moves the cursor past it
// and the following gap. The gap may be negative.
func (t *Track) Advance(mainSize, gap int) {
	t.end = t.cursor + mainSize
	t.cursor = t.end + gap
}

// Extent returns the distance from the leading content edge to the far edge
// of the last placed child.
func (t *Track) Extent() int {
	return t.end - t.content.Start(t.axis)
}
