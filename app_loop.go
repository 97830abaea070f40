package borealis

import (
	"context"
	"time"

	"github.com/grindlemire/borealis/internal/debug"
)

// Run drives Frame at the configured frame rate until Quit is called or ctx
// is done. The app becomes the default app while running.
func (a *App) Run(ctx context.Context) error {
	prev := DefaultApp()
	SetDefaultApp(a)
	defer SetDefaultApp(prev)

	ticker := time.NewTicker(a.frameDuration)
	defer ticker.Stop()

	a.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stopCh:
			return nil
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

// Quit stops the frame loop and runs the quit callback. Quit is idempotent.
func (a *App) Quit() {
	a.stopOnce.Do(func() {
		debug.Log("App.Quit")
		close(a.stopCh)
		if a.onQuit != nil {
			a.onQuit()
		}
	})
}

// Done is closed once Quit has been called.
func (a *App) Done() <-chan struct{} {
	return a.stopCh
}

// Post enqueues fn to run at the start of the next frame.
// Safe to call from any goroutine. Collaborators use it to deliver results.
func (a *App) Post(fn func()) {
	select {
	case <-a.stopCh:
		return
	default:
	}
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
		// App is stopping, ignore update
	default:
		debug.Log("App.Post: queue full, dropping callback")
	}
}

// drainQueue runs every queued callback without blocking.
func (a *App) drainQueue() {
	for {
		select {
		case fn := <-a.eventQueue:
			fn()
		default:
			return
		}
	}
}
