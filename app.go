package borealis

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/borealis/internal/anim"
	"github.com/grindlemire/borealis/internal/debug"
)

// translucent is implemented by views that keep the views below them
// visible, such as Dropdown.
type translucent interface {
	IsTranslucent() bool
}

// backHandler is implemented by views that handle the back action
// themselves.
type backHandler interface {
	OnBack() bool
}

// showAnimationEnder is implemented by views that react to the end of the
// push animation.
type showAnimationEnder interface {
	OnShowAnimationEnd()
}

func isTranslucent(v View) bool {
	t, ok := v.(translucent)
	return ok && t.IsTranslucent()
}

type stackEntry struct {
	view View
	// focus is the view focused before this entry was pushed.
	focus View
}

// App hosts a stack of views and drives them one frame at a time: it
// drains posted callbacks, ticks the animation timeline, lays out dirty
// views and draws the stack with the focus highlight.
type App struct {
	stack     []stackEntry
	focus     *FocusManager
	timeline  *anim.Timeline
	scheduler anim.Scheduler
	keyboard  Keyboard
	picker    Picker
	style     Style
	theme     Theme
	measurer  TextMeasurer
	canvas    Canvas
	width     int
	height    int
	title     string
	dirty     atomic.Bool

	// Frame loop fields
	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	onQuit     func()

	// Configuration (set via options)
	frameDuration  time.Duration // Duration per frame (default 16ms = 60fps)
	eventQueueSize int           // Capacity of event queue (default 256, used during construction)
}

// NewApp creates an app with a 1280x720 surface, the built-in style and the
// dark theme. It draws nothing until a Canvas is configured.
func NewApp(opts ...AppOption) (*App, error) {
	tl := anim.NewTimeline()
	a := &App{
		focus:          NewFocusManager(),
		timeline:       tl,
		scheduler:      tl,
		style:          DefaultStyle(),
		theme:          DarkTheme(),
		measurer:       MonospaceMeasurer{},
		width:          1280,
		height:         720,
		title:          "borealis",
		stopCh:         make(chan struct{}),
		frameDuration:  16 * time.Millisecond, // Default ~60fps
		eventQueueSize: 256,                   // Default queue size
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	a.eventQueue = make(chan func(), a.eventQueueSize)
	a.dirty.Store(true)
	return a, nil
}

var (
	defaultMu  sync.RWMutex
	defaultApp *App
)

// SetDefaultApp sets the app used by views that are not attached to one.
func SetDefaultApp(a *App) {
	defaultMu.Lock()
	defaultApp = a
	defaultMu.Unlock()
}

// DefaultApp returns the app set by SetDefaultApp, or nil.
func DefaultApp() *App {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultApp
}

// Style returns the active style. It is read-only during a frame.
func (a *App) Style() *Style { return &a.style }

// Theme returns the active theme.
func (a *App) Theme() *Theme { return &a.theme }

// ApplyStyle swaps in the values of store and relayouts every view.
func (a *App) ApplyStyle(store *StyleStore) {
	a.style = store.Style()
	a.theme = store.Theme()
	a.invalidateAll()
}

// Scheduler returns the scheduler transitions are registered with.
func (a *App) Scheduler() anim.Scheduler { return a.scheduler }

// Timeline returns the timeline ticked by Frame.
func (a *App) Timeline() *anim.Timeline { return a.timeline }

// Keyboard returns the keyboard collaborator. Without one, opening a
// keyboard does nothing.
func (a *App) Keyboard() Keyboard {
	if a.keyboard == nil {
		return noKeyboard{}
	}
	return a.keyboard
}

// Picker returns the picker collaborator. The default pushes a Dropdown.
func (a *App) Picker() Picker {
	if a.picker == nil {
		return dropdownPicker{app: a}
	}
	return a.picker
}

// Measurer returns the text measurer.
func (a *App) Measurer() TextMeasurer { return a.measurer }

// SetCanvas replaces the drawing backend.
func (a *App) SetCanvas(c Canvas) {
	a.canvas = c
	a.MarkDirty()
}

// Title returns the application name shown by frames.
func (a *App) Title() string { return a.title }

// Size returns the surface size.
func (a *App) Size() (width, height int) { return a.width, a.height }

// Resize changes the surface size and relayouts every view.
func (a *App) Resize(width, height int) {
	a.width, a.height = width, height
	a.invalidateAll()
}

// Focus returns the focus manager.
func (a *App) Focus() *FocusManager { return a.focus }

// Focused returns the focused view, or nil.
func (a *App) Focused() View { return a.focus.Focused() }

// Top returns the topmost view, or nil.
func (a *App) Top() View {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1].view
}

// Views returns the view stack, bottom first.
func (a *App) Views() []View {
	out := make([]View, len(a.stack))
	for i, e := range a.stack {
		out[i] = e.view
	}
	return out
}

// PushView puts v on top of the stack, fades it in and gives it focus.
// The view below gets WillDisappear unless v is translucent.
func (a *App) PushView(v View) {
	prev := a.Top()
	a.stack = append(a.stack, stackEntry{view: v, focus: a.focus.Focused()})
	attach(v, a)

	v.SetBoundaries(0, 0, a.width, a.height)
	LayoutView(v, a.layoutContext())

	if prev != nil && !isTranslucent(v) {
		prev.WillDisappear()
	}
	v.WillAppear()

	b := v.viewBase()
	b.alpha = 0
	b.Show(func() {
		if e, ok := v.(showAnimationEnder); ok {
			e.OnShowAnimationEnd()
		}
	}, true)

	if target := v.RequestFocus(FocusNone, nil, false); target != nil {
		a.focus.Give(target)
	} else {
		a.focus.Clear()
	}
	debug.Log("App.PushView: %T depth=%d focus=%T", v, len(a.stack), a.focus.Focused())
	a.MarkDirty()
}

// PopView disposes the top view and restores the focus it replaced.
func (a *App) PopView() {
	n := len(a.stack)
	if n == 0 {
		return
	}
	e := a.stack[n-1]
	a.stack = a.stack[:n-1]

	if f := a.focus.Focused(); f != nil && contains(e.view, f) {
		a.focus.Clear()
	}
	e.view.WillDisappear()
	e.view.Dispose()

	if top := a.Top(); top != nil {
		if !isTranslucent(e.view) {
			top.WillAppear()
		}
		target := e.focus
		if target == nil || target.IsDisposed() {
			target = top.RequestFocus(FocusNone, nil, false)
		}
		a.focus.Give(target)
	}
	debug.Log("App.PopView: %T depth=%d", e.view, len(a.stack))
	a.MarkDirty()
}

// Navigate moves focus in dir by asking the focused view's parent for the
// next target. Reports whether focus moved.
func (a *App) Navigate(dir FocusDirection) bool {
	cur := a.focus.Focused()
	if cur == nil {
		top := a.Top()
		if top == nil {
			return false
		}
		next := top.RequestFocus(FocusNone, nil, false)
		a.focus.Give(next)
		return next != nil
	}

	parent := cur.Parent()
	if parent == nil {
		return false
	}
	next := parent.RequestFocus(dir, cur, true)
	if next == nil || next == cur {
		debug.Log("App.Navigate: %s from %T has no target", dir, cur)
		return false
	}
	a.focus.Give(next)
	return true
}

// Confirm clicks the focused view. Reports whether the click was consumed.
func (a *App) Confirm() bool {
	cur := a.focus.Focused()
	if cur == nil {
		return false
	}
	return cur.OnClick()
}

// Back lets the top view handle the back action, otherwise pops it unless
// it is the last one. Reports whether anything happened.
func (a *App) Back() bool {
	top := a.Top()
	if top == nil {
		return false
	}
	if h, ok := top.(backHandler); ok && h.OnBack() {
		return true
	}
	if len(a.stack) > 1 {
		a.PopView()
		return true
	}
	return false
}

// Frame runs one frame at now. Reports whether anything was drawn.
func (a *App) Frame(now time.Time) bool {
	a.drainQueue()
	animating := a.timeline.Tick(now)
	a.layout()
	if !a.checkAndClearDirty() && !animating {
		return false
	}
	a.draw()
	return true
}

func (a *App) layoutContext() *LayoutContext {
	return &LayoutContext{Style: &a.style, Measurer: a.measurer}
}

func (a *App) layout() {
	ctx := a.layoutContext()
	for _, e := range a.stack {
		if !e.view.IsDirty() {
			continue
		}
		e.view.SetBoundaries(0, 0, a.width, a.height)
		LayoutView(e.view, ctx)
	}
}

func (a *App) draw() {
	if a.canvas == nil {
		return
	}
	ctx := &FrameContext{
		Canvas:   a.canvas,
		Style:    &a.style,
		Theme:    &a.theme,
		Measurer: a.measurer,
		Alpha:    1,
	}
	a.canvas.FillRect(NewRect(0, 0, a.width, a.height), a.theme.BackgroundColor)

	start := len(a.stack) - 1
	for start > 0 && isTranslucent(a.stack[start].view) {
		start--
	}
	for i := max(start, 0); i < len(a.stack); i++ {
		DrawView(a.stack[i].view, ctx)
	}
	a.drawHighlight(ctx)
}

func (a *App) drawHighlight(ctx *FrameContext) {
	cur := a.focus.Focused()
	if cur == nil {
		return
	}
	b := cur.viewBase()
	if b.hidden || b.alpha <= 0 {
		return
	}
	hs := ctx.Style.Highlight
	r := cur.HighlightRect().Outset(EdgeAll(hs.Padding))
	ctx.Canvas.StrokeRect(r, ctx.Theme.HighlightColor.Fade(b.alpha), hs.StrokeWidth)
}
