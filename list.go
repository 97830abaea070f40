package borealis

// Row is implemented by every view tagged KindRow.
type Row interface {
	View
	HasDescription() bool
	DrawTopSeparator() bool
	SetDrawTopSeparator(draw bool)
}

// asRow returns v as a Row when its capability tag says it is one.
func asRow(v View) (Row, bool) {
	if v == nil || v.Kind() != KindRow {
		return nil, false
	}
	r, ok := v.(Row)
	return r, ok
}

// List is a vertical BoxLayout of settings rows. Margins and spacing come
// from the style unless set explicitly.
type List struct {
	BoxLayout
	ownSpacing    bool
	ownMargins    bool
	headerPadding int
}

// NewList creates an empty list. defaultFocus is the row focused the first
// time the list is entered.
func NewList(defaultFocus int) *List {
	l := &List{}
	l.InitBox(l, Vertical, defaultFocus)
	return l
}

// SetSpacing overrides the style spacing.
func (l *List) SetSpacing(spacing int) {
	l.ownSpacing = true
	l.BoxLayout.SetSpacing(spacing)
}

// SetMargins overrides the style margins.
func (l *List) SetMargins(margins Edges) {
	l.ownMargins = true
	l.BoxLayout.SetMargins(margins)
}

// Layout applies the list style and lays out the rows.
func (l *List) Layout(ctx *LayoutContext) {
	ls := ctx.Style.List
	if !l.ownSpacing {
		l.spacing = ls.Spacing
	}
	if !l.ownMargins {
		l.margins = EdgeSymmetric(ls.MarginTopBottom, ls.MarginLeftRight)
	}
	l.headerPadding = ctx.Style.Header.Padding

	if len(l.children) > 0 {
		if r, ok := asRow(l.children[0].view); ok {
			r.SetDrawTopSeparator(true)
		}
	}
	l.BoxLayout.Layout(ctx)
}

// CustomSpacing resolves the gap between two adjacent list children. Rows
// without a description merge into the next row: the gap shrinks to 2 and
// the next row drops its top separator. The first matching rule wins.
func (l *List) CustomSpacing(current, next View, spacing int) int {
	nextRow, nextIsRow := asRow(next)
	if nextIsRow {
		nextRow.SetDrawTopSeparator(true)
	}
	curRow, curIsRow := asRow(current)
	cur, nxt := current.Kind(), next.Kind()

	switch {
	case curIsRow && nextIsRow && !curRow.HasDescription():
		nextRow.SetDrawTopSeparator(false)
		return 2
	case cur == KindRow && nxt == KindGroupSpacing:
		return 0
	case cur == KindRow && nxt == KindTabular:
		return spacing / 2
	case cur == KindTabular:
		return spacing / 2
	case cur == KindGroupSpacing:
		return spacing / 2
	// Applies to a row followed by a header too; that pair does not keep
	// the base spacing.
	case cur == KindHeader || nxt == KindHeader:
		return l.headerPadding
	}
	return spacing
}

// DefaultFocus re-offers the row that last held focus, then falls back to
// the first focusable child.
func (l *List) DefaultFocus(old View) View {
	if l.focusedIndex >= 0 && l.focusedIndex < len(l.children) {
		if v := l.children[l.focusedIndex].view.RequestFocus(FocusNone, old, false); v != nil {
			return v
		}
	}
	return l.BoxLayout.DefaultFocus(old)
}

// ListItemGroupSpacing is an empty gap between two groups of rows,
// optionally drawn as a separator line.
type ListItemGroupSpacing struct {
	Base
	separator bool
}

// NewListItemGroupSpacing creates a group gap.
func NewListItemGroupSpacing(separator bool) *ListItemGroupSpacing {
	g := &ListItemGroupSpacing{separator: separator}
	g.Init(g, KindGroupSpacing)
	return g
}

// Layout sizes the gap from the style.
func (g *ListItemGroupSpacing) Layout(ctx *LayoutContext) {
	g.bounds.Height = ctx.Style.List.GroupSpacingHeight
}

// Draw draws the separator line, if enabled.
func (g *ListItemGroupSpacing) Draw(ctx *FrameContext) {
	if !g.separator {
		return
	}
	r := g.bounds
	ctx.Canvas.FillRect(Rect{X: r.X, Y: r.Y + r.Height/2, Width: r.Width, Height: 1}, ctx.Fade(ctx.Theme.ListItemSeparatorColor))
}
