package borealis

// Header is a section title inside a List: an accent bar, the title and a
// separator line underneath.
type Header struct {
	Base
	label     string
	separator bool
}

// NewHeader creates a section header.
func NewHeader(label string, separator bool) *Header {
	h := &Header{label: label, separator: separator}
	h.Init(h, KindHeader)
	return h
}

// Label returns the header text.
func (h *Header) Label() string { return h.label }

// Layout sizes the header from the style.
func (h *Header) Layout(ctx *LayoutContext) {
	h.bounds.Height = ctx.Style.Header.Height
}

// Draw implements View.
func (h *Header) Draw(ctx *FrameContext) {
	hs := ctx.Style.Header
	r := h.bounds
	padding := hs.Padding

	ctx.Canvas.FillRect(Rect{
		X:      r.X,
		Y:      r.Y + padding,
		Width:  hs.RectangleWidth,
		Height: max(0, r.Height-padding*2),
	}, ctx.Fade(ctx.Theme.HeaderRectangleColor))

	ctx.Canvas.Text(r.X+hs.RectangleWidth+padding, r.Y+r.Height/2, h.label, TextStyle{
		Size:  float64(hs.FontSize),
		Color: ctx.Fade(ctx.Theme.TextColor),
	})

	if h.separator {
		ctx.Canvas.FillRect(Rect{X: r.X, Y: r.Bottom() + 1, Width: r.Width, Height: 1}, ctx.Fade(ctx.Theme.ListItemSeparatorColor))
	}
}
