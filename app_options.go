package borealis

import (
	"fmt"
	"time"

	"github.com/grindlemire/borealis/internal/style"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for the frame loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the posted callback queue.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithScheduler replaces the built-in timeline as the transition scheduler.
// Frame still ticks the built-in timeline; s is driven by its owner.
func WithScheduler(s Scheduler) AppOption {
	return func(a *App) error {
		if s == nil {
			return fmt.Errorf("scheduler must not be nil")
		}
		a.scheduler = s
		return nil
	}
}

// WithKeyboard sets the on-screen keyboard collaborator.
func WithKeyboard(k Keyboard) AppOption {
	return func(a *App) error {
		a.keyboard = k
		return nil
	}
}

// WithPicker replaces the built-in Dropdown picker.
func WithPicker(p Picker) AppOption {
	return func(a *App) error {
		a.picker = p
		return nil
	}
}

// WithStyle sets the layout constants. The style must validate.
func WithStyle(st Style) AppOption {
	return func(a *App) error {
		if errs := st.Validate(); len(errs) > 0 {
			return fmt.Errorf("invalid style: %w", style.ValidationErrors(errs))
		}
		a.style = st
		return nil
	}
}

// WithTheme sets the colors.
func WithTheme(th Theme) AppOption {
	return func(a *App) error {
		a.theme = th
		return nil
	}
}

// WithStyleStore takes both style and theme from a loaded store.
func WithStyleStore(store *StyleStore) AppOption {
	return func(a *App) error {
		if store == nil {
			return fmt.Errorf("style store must not be nil")
		}
		a.style = store.Style()
		a.theme = store.Theme()
		return nil
	}
}

// WithMeasurer sets the text measurer. Default is MonospaceMeasurer.
func WithMeasurer(m TextMeasurer) AppOption {
	return func(a *App) error {
		if m == nil {
			return fmt.Errorf("measurer must not be nil")
		}
		a.measurer = m
		return nil
	}
}

// WithCanvas sets the drawing backend.
func WithCanvas(c Canvas) AppOption {
	return func(a *App) error {
		a.canvas = c
		return nil
	}
}

// WithSize sets the surface size. Default is 1280x720.
func WithSize(width, height int) AppOption {
	return func(a *App) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("surface size must be at least 1x1, got %dx%d", width, height)
		}
		a.width, a.height = width, height
		return nil
	}
}

// WithTitle sets the application name shown by frames.
func WithTitle(title string) AppOption {
	return func(a *App) error {
		a.title = title
		return nil
	}
}

// WithOnQuit registers a callback run once when Quit is called.
func WithOnQuit(fn func()) AppOption {
	return func(a *App) error {
		a.onQuit = fn
		return nil
	}
}
