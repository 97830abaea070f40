package borealis

import "github.com/grindlemire/borealis/internal/debug"

// FocusManager tracks the focused view. It does not pick targets itself;
// the App resolves them through View.RequestFocus and hands them to Give.
type FocusManager struct {
	current  View
	onChange func(old, cur View)
}

// NewFocusManager creates a FocusManager with nothing focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Focused returns the focused view, or nil if none.
func (f *FocusManager) Focused() View {
	return f.current
}

// OnChange registers a callback run after focus moves.
func (f *FocusManager) OnChange(fn func(old, cur View)) {
	f.onChange = fn
}

// Give moves focus to v. Nil, or the view already focused, leaves focus
// unchanged.
func (f *FocusManager) Give(v View) {
	if v == nil || v == f.current {
		return
	}
	old := f.current
	debug.Log("FocusManager.Give: %T -> %T", old, v)
	if old != nil {
		old.OnFocusLost()
	}
	f.current = v
	v.OnFocusGained()
	if f.onChange != nil {
		f.onChange(old, v)
	}
}

// Clear removes focus without selecting a new view.
func (f *FocusManager) Clear() {
	if f.current == nil {
		return
	}
	old := f.current
	f.current = nil
	old.OnFocusLost()
	if f.onChange != nil {
		f.onChange(old, nil)
	}
}
