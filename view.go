package borealis

import (
	"fmt"

	"github.com/grindlemire/borealis/internal/anim"
	"github.com/grindlemire/borealis/internal/debug"
)

// Kind is the capability tag of a view, fixed at construction. List spacing
// rules match on it.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindRow
	KindGroupSpacing
	KindTabular
	KindHeader
)

var kindNames = [...]string{"generic", "row", "group_spacing", "tabular", "header"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// FocusDirection is the direction of a focus move. FocusNone asks for a
// view's default focus.
type FocusDirection uint8

const (
	FocusNone FocusDirection = iota
	FocusUp
	FocusDown
	FocusLeft
	FocusRight
)

var directionNames = [...]string{"none", "up", "down", "left", "right"}

func (d FocusDirection) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

// View is a node of the view tree.
//
// Parents assign bounds with SetBoundaries and then call Layout; geometry is
// only authoritative after that. Views are built by embedding Base and
// calling Base.Init with the outermost value.
type View interface {
	Kind() Kind
	Bounds() Rect
	SetBoundaries(x, y, width, height int)
	Width() int
	Height() int
	SetWidth(width int)
	SetHeight(height int)

	Parent() View
	SetParent(parent View)
	// Children returns the views owned by this view.
	Children() []View

	Layout(ctx *LayoutContext)
	Draw(ctx *FrameContext)

	IsFocusable() bool
	// RequestFocus resolves a focus target. With fromUp false the view is
	// being offered focus; with fromUp true one of its children is asking
	// it to move focus away from old. Nil means no target.
	RequestFocus(dir FocusDirection, old View, fromUp bool) View
	OnFocusGained()
	OnFocusLost()
	OnChildFocusGained(child View)
	// OnClick handles a confirm press and reports whether it was consumed.
	OnClick() bool
	// HighlightRect is the area outlined while focused.
	HighlightRect() Rect

	WillAppear()
	WillDisappear()

	Invalidate()
	IsDirty() bool
	// Dispose ends the view's lifetime and disposes its children. Disposing
	// twice panics.
	Dispose()
	IsDisposed() bool

	viewBase() *Base
}

// Base implements View and carries the state shared by every view.
// Embed it and call Init from the constructor.
type Base struct {
	self     View
	kind     Kind
	bounds   Rect
	parent   View
	app      *App
	dirty    bool
	disposed bool
	focused  bool

	focusable bool
	hidden    bool
	alpha     float64
	alphaAnim anim.Handle

	clickListener func(View)
}

// Init binds the base to self, the embedding view. It must run before any
// other method.
func (b *Base) Init(self View, kind Kind) {
	b.self = self
	b.kind = kind
	b.alpha = 1
	b.dirty = true
}

func (b *Base) viewBase() *Base { return b }

// Kind returns the capability tag.
func (b *Base) Kind() Kind { return b.kind }

// Bounds returns the last assigned geometry.
func (b *Base) Bounds() Rect { return b.bounds }

// SetBoundaries assigns geometry. Layout must follow.
func (b *Base) SetBoundaries(x, y, width, height int) {
	b.bounds = Rect{X: x, Y: y, Width: width, Height: height}
}

func (b *Base) X() int      { return b.bounds.X }
func (b *Base) Y() int      { return b.bounds.Y }
func (b *Base) Width() int  { return b.bounds.Width }
func (b *Base) Height() int { return b.bounds.Height }

func (b *Base) SetWidth(width int)   { b.bounds.Width = width }
func (b *Base) SetHeight(height int) { b.bounds.Height = height }

func (b *Base) Parent() View          { return b.parent }
func (b *Base) SetParent(parent View) { b.parent = parent }

// Children returns nil; containers override it.
func (b *Base) Children() []View { return nil }

// Layout does nothing by default.
func (b *Base) Layout(ctx *LayoutContext) {}

// Draw does nothing by default.
func (b *Base) Draw(ctx *FrameContext) {}

// SetFocusable sets whether the view accepts focus when offered.
func (b *Base) SetFocusable(focusable bool) {
	b.focusable = focusable
}

// IsFocusable reports whether the view accepts focus when offered.
func (b *Base) IsFocusable() bool {
	return b.focusable && !b.hidden
}

// IsFocused reports whether the view currently holds focus.
func (b *Base) IsFocused() bool {
	return b.focused
}

// RequestFocus returns the view itself when offered focus and focusable.
// Requests coming from a child bubble to the parent.
func (b *Base) RequestFocus(dir FocusDirection, old View, fromUp bool) View {
	if !fromUp {
		if b.self.IsFocusable() {
			return b.self
		}
		return nil
	}
	if b.parent == nil {
		return nil
	}
	return b.parent.RequestFocus(dir, old, true)
}

// OnFocusGained marks the view focused and notifies its ancestors.
func (b *Base) OnFocusGained() {
	b.focused = true
	if b.parent != nil {
		b.parent.OnChildFocusGained(b.self)
	}
	b.redraw()
}

// OnFocusLost clears the focused flag.
func (b *Base) OnFocusLost() {
	b.focused = false
	b.redraw()
}

// OnChildFocusGained forwards the notification to the parent.
func (b *Base) OnChildFocusGained(child View) {
	if b.parent != nil {
		b.parent.OnChildFocusGained(b.self)
	}
}

// SetClickListener replaces the click listener. Nil removes it.
func (b *Base) SetClickListener(fn func(View)) {
	b.clickListener = fn
}

// OnClick runs the click listener, if any.
func (b *Base) OnClick() bool {
	if b.clickListener == nil {
		return false
	}
	b.clickListener(b.self)
	return true
}

// HighlightRect returns the view bounds.
func (b *Base) HighlightRect() Rect {
	return b.bounds
}

// WillAppear forwards to the children.
func (b *Base) WillAppear() {
	for _, c := range b.self.Children() {
		c.WillAppear()
	}
}

// WillDisappear forwards to the children.
func (b *Base) WillDisappear() {
	for _, c := range b.self.Children() {
		c.WillDisappear()
	}
}

// Invalidate marks the view and its ancestors as needing layout.
func (b *Base) Invalidate() {
	for v := b.self; v != nil; v = v.Parent() {
		v.viewBase().dirty = true
	}
	b.redraw()
}

// IsDirty reports whether the view needs layout.
func (b *Base) IsDirty() bool {
	return b.dirty
}

// Dispose ends the view's lifetime. Pending transitions are canceled before
// the children are disposed.
func (b *Base) Dispose() {
	if b.disposed {
		panic(fmt.Sprintf("borealis: %T disposed twice", b.self))
	}
	b.disposed = true
	if b.alphaAnim != nil {
		b.alphaAnim.Cancel()
	}
	for _, c := range b.self.Children() {
		c.Dispose()
	}
	b.parent = nil
	b.app = nil
}

// IsDisposed reports whether Dispose has run.
func (b *Base) IsDisposed() bool {
	return b.disposed
}

// Alpha returns the view's own opacity.
func (b *Base) Alpha() float64 {
	return b.alpha
}

// SetAlpha sets the view's own opacity without animation.
func (b *Base) SetAlpha(alpha float64) {
	b.alpha = alpha
	b.redraw()
}

// IsHidden reports whether the view is hidden.
func (b *Base) IsHidden() bool {
	return b.hidden
}

// Show fades the view in. onEnd runs once the view is fully opaque.
func (b *Base) Show(onEnd func(), animate bool) {
	b.hidden = false
	b.fade(1, onEnd, animate)
}

// Hide fades the view out and hides it. onEnd runs once it is hidden.
func (b *Base) Hide(onEnd func(), animate bool) {
	b.fade(0, func() {
		b.hidden = true
		if onEnd != nil {
			onEnd()
		}
	}, animate)
}

func (b *Base) fade(target float64, onEnd func(), animate bool) {
	if b.alphaAnim != nil {
		b.alphaAnim.Cancel()
	}
	if !animate {
		b.alpha = target
		b.redraw()
		if onEnd != nil {
			onEnd()
		}
		return
	}
	b.alphaAnim = b.Scheduler().Schedule(anim.Transition{
		Subject:    &b.alpha,
		From:       b.alpha,
		Target:     target,
		Duration:   b.style().Animations.Show,
		Easing:     anim.EaseOutCubic,
		OnTick:     b.redraw,
		OnComplete: onEnd,
	})
}

// App returns the app hosting the view's tree, or the default app.
func (b *Base) App() *App {
	for v := b.self; v != nil; v = v.Parent() {
		if a := v.viewBase().app; a != nil {
			return a
		}
	}
	return DefaultApp()
}

// Scheduler returns the hosting app's scheduler. Without an app transitions
// complete immediately.
func (b *Base) Scheduler() anim.Scheduler {
	if a := b.App(); a != nil {
		return a.Scheduler()
	}
	return anim.Immediate{}
}

func (b *Base) style() *Style {
	if a := b.App(); a != nil {
		return a.Style()
	}
	return &fallbackStyle
}

// redraw asks the hosting app for a new frame without a layout pass.
func (b *Base) redraw() {
	if a := b.App(); a != nil {
		a.MarkDirty()
	}
}

var fallbackStyle = DefaultStyle()

// LayoutView lays v out in its assigned bounds and clears its dirty flag.
// Containers call it for each child.
func LayoutView(v View, ctx *LayoutContext) {
	v.Layout(ctx)
	v.viewBase().dirty = false
}

// DrawView draws v with its own alpha applied. Hidden views are skipped.
func DrawView(v View, ctx *FrameContext) {
	b := v.viewBase()
	if b.hidden || b.alpha <= 0 {
		return
	}
	if b.alpha < 1 {
		ctx = ctx.WithAlpha(b.alpha)
	}
	v.Draw(ctx)
}

// attach binds a root view to a.
func attach(v View, a *App) {
	v.viewBase().app = a
	debug.Log("attach: %T to app", v)
}

// contains reports whether v is ancestor or equal to target.
func contains(v, target View) bool {
	for t := target; t != nil; t = t.Parent() {
		if t == v {
			return true
		}
	}
	return false
}
