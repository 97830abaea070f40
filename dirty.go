package borealis

// MarkDirty requests a new frame from the default app. Views that are not
// attached anywhere reach the app this way; without one it panics.
func MarkDirty() {
	a := DefaultApp()
	if a == nil {
		panic("borealis: MarkDirty needs a default app; call SetDefaultApp first")
	}
	a.MarkDirty()
}

// MarkDirty requests a redraw on the next Frame. It does not trigger a
// layout pass; use View.Invalidate for that. Safe from any goroutine.
func (a *App) MarkDirty() {
	if a == nil {
		panic("borealis: MarkDirty on a nil app")
	}
	a.dirty.Store(true)
}

// checkAndClearDirty consumes a pending redraw request.
func (a *App) checkAndClearDirty() bool {
	return a.dirty.Swap(false)
}

// invalidateAll schedules a layout pass for every stacked view.
func (a *App) invalidateAll() {
	for _, e := range a.stack {
		e.view.Invalidate()
	}
	a.MarkDirty()
}
