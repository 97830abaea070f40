package borealis

import (
	"github.com/grindlemire/borealis/internal/debug"
	"github.com/grindlemire/borealis/internal/style"
)

// StyleLoader builds StyleStores from defaults, a config file and the
// environment.
type StyleLoader = style.Loader

// NewStyleLoader returns a loader with the built-in defaults registered.
func NewStyleLoader() *StyleLoader {
	return style.NewLoader()
}

// WatchStyle applies every successful reload of l's config file on the
// frame loop. Failed reloads keep the current style and go to onError.
func (a *App) WatchStyle(l *StyleLoader, onError func(error)) {
	l.Watch(func(st *StyleStore, err error) {
		a.Post(func() {
			if err != nil {
				debug.Log("App.WatchStyle: reload failed: %v", err)
				if onError != nil {
					onError(err)
				}
				return
			}
			a.ApplyStyle(st)
		})
	})
}
