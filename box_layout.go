package borealis

import (
	"github.com/grindlemire/borealis/internal/debug"
	"github.com/grindlemire/borealis/internal/layout"
)

// SpacingPolicy resolves the gap between two adjacent children. It may
// also adjust cosmetic flags of next. BoxLayout evaluates it once per
// adjacent pair on every layout pass.
type SpacingPolicy interface {
	CustomSpacing(current, next View, spacing int) int
}

// DefaultFocuser picks the view that receives focus when a container is
// entered without a direction to follow.
type DefaultFocuser interface {
	DefaultFocus(old View) View
}

type boxChild struct {
	view   View
	offset int
}

// BoxLayout arranges its children along one axis. It owns them: disposing
// the layout disposes every child.
type BoxLayout struct {
	Base
	axis         Axis
	children     []*boxChild
	spacing      int
	margins      Edges
	resize       bool
	defaultIndex int
	focusedIndex int
}

// NewBoxLayout creates an empty layout. defaultFocus is the index offered
// focus first when the layout is entered.
func NewBoxLayout(axis Axis, defaultFocus int) *BoxLayout {
	b := &BoxLayout{}
	b.InitBox(b, axis, defaultFocus)
	return b
}

// InitBox initializes an embedded BoxLayout for self.
func (b *BoxLayout) InitBox(self View, axis Axis, defaultFocus int) {
	b.Base.Init(self, KindGeneric)
	b.axis = axis
	b.defaultIndex = defaultFocus
	b.focusedIndex = -1
}

// Axis returns the main axis.
func (b *BoxLayout) Axis() Axis { return b.axis }

// Spacing returns the base spacing between children.
func (b *BoxLayout) Spacing() int { return b.spacing }

// SetSpacing sets the base spacing between children.
func (b *BoxLayout) SetSpacing(spacing int) {
	b.spacing = spacing
	b.Invalidate()
}

// Margins returns the inner margins.
func (b *BoxLayout) Margins() Edges { return b.margins }

// SetMargins sets the inner margins.
func (b *BoxLayout) SetMargins(margins Edges) {
	b.margins = margins
	b.Invalidate()
}

// SetResize makes the layout size itself to its children along the main axis.
func (b *BoxLayout) SetResize(resize bool) {
	b.resize = resize
	b.Invalidate()
}

// AddView appends a child and takes ownership of it.
func (b *BoxLayout) AddView(v View) {
	v.SetParent(b.self)
	b.children = append(b.children, &boxChild{view: v})
	b.Invalidate()
}

// RemoveView disposes and removes the child at index.
func (b *BoxLayout) RemoveView(index int) {
	if index < 0 || index >= len(b.children) {
		panic("borealis: BoxLayout.RemoveView index out of range")
	}
	v := b.children[index].view
	b.children = append(b.children[:index], b.children[index+1:]...)
	switch {
	case b.focusedIndex == index:
		b.focusedIndex = -1
	case b.focusedIndex > index:
		b.focusedIndex--
	}
	v.WillDisappear()
	v.Dispose()
	b.Invalidate()
}

// Clear disposes and removes every child.
func (b *BoxLayout) Clear() {
	for _, c := range b.children {
		c.view.WillDisappear()
		c.view.Dispose()
	}
	b.children = nil
	b.focusedIndex = -1
	b.Invalidate()
}

// Len returns the number of children.
func (b *BoxLayout) Len() int { return len(b.children) }

// ViewAt returns the child at index.
func (b *BoxLayout) ViewAt(index int) View { return b.children[index].view }

// ChildOffset returns the main-axis position of the child at index from the
// last layout pass.
func (b *BoxLayout) ChildOffset(index int) int { return b.children[index].offset }

// Children implements View.
func (b *BoxLayout) Children() []View {
	out := make([]View, len(b.children))
	for i, c := range b.children {
		out[i] = c.view
	}
	return out
}

// FocusedIndex returns the index of the child that last held focus, or -1.
func (b *BoxLayout) FocusedIndex() int { return b.focusedIndex }

// CustomSpacing returns spacing unchanged.
func (b *BoxLayout) CustomSpacing(current, next View, spacing int) int {
	return spacing
}

// Layout places the children one after another along the axis. Each gap is
// resolved through the embedding view's SpacingPolicy.
func (b *BoxLayout) Layout(ctx *LayoutContext) {
	policy, ok := b.self.(SpacingPolicy)
	if !ok {
		policy = b
	}

	track := layout.NewTrack(b.axis, b.bounds.Inset(b.margins))
	for i, c := range b.children {
		c.offset = track.Offset()
		slot := track.Slot(c.view.Bounds().Main(b.axis))
		c.view.SetBoundaries(slot.X, slot.Y, slot.Width, slot.Height)
		LayoutView(c.view, ctx)

		gap := 0
		if i+1 < len(b.children) {
			gap = policy.CustomSpacing(c.view, b.children[i+1].view, b.spacing)
		}
		track.Advance(c.view.Bounds().Main(b.axis), gap)
	}

	if b.resize {
		size := track.Extent() + b.margins.Along(b.axis)
		if b.axis == Horizontal {
			b.bounds.Width = size
		} else {
			b.bounds.Height = size
		}
	}
}

// Draw draws the children in order.
func (b *BoxLayout) Draw(ctx *FrameContext) {
	for _, c := range b.children {
		DrawView(c.view, ctx)
	}
}

// RequestFocus offers focus to the default child when entered. A request
// from a child steps along the axis from that child; when no sibling
// accepts, or the move is across the axis, the request bubbles up.
func (b *BoxLayout) RequestFocus(dir FocusDirection, old View, fromUp bool) View {
	if !fromUp {
		if d, ok := b.self.(DefaultFocuser); ok {
			return d.DefaultFocus(old)
		}
		return b.DefaultFocus(old)
	}

	idx := b.indexOf(old)
	step := b.step(dir)
	if idx >= 0 && step != 0 {
		for i := idx + step; i >= 0 && i < len(b.children); i += step {
			if v := b.children[i].view.RequestFocus(dir, old, false); v != nil {
				debug.Log("BoxLayout.RequestFocus: %s from %d lands on child %d", dir, idx, i)
				return v
			}
		}
	}
	return b.Base.RequestFocus(dir, old, true)
}

// DefaultFocus offers focus to each child starting at the default index,
// wrapping around, and returns the first accepted target.
func (b *BoxLayout) DefaultFocus(old View) View {
	n := len(b.children)
	if n == 0 {
		return nil
	}
	start := b.defaultIndex
	if start < 0 || start >= n {
		start = 0
	}
	for k := 0; k < n; k++ {
		if v := b.children[(start+k)%n].view.RequestFocus(FocusNone, old, false); v != nil {
			return v
		}
	}
	return nil
}

// OnChildFocusGained remembers which child holds focus.
func (b *BoxLayout) OnChildFocusGained(child View) {
	if i := b.indexOf(child); i >= 0 {
		b.focusedIndex = i
	}
	b.Base.OnChildFocusGained(child)
}

// indexOf returns the index of the child that is v or contains v.
func (b *BoxLayout) indexOf(v View) int {
	for i, c := range b.children {
		if contains(c.view, v) {
			return i
		}
	}
	return -1
}

func (b *BoxLayout) step(dir FocusDirection) int {
	switch {
	case b.axis == Vertical && dir == FocusDown, b.axis == Horizontal && dir == FocusRight:
		return 1
	case b.axis == Vertical && dir == FocusUp, b.axis == Horizontal && dir == FocusLeft:
		return -1
	}
	return 0
}
