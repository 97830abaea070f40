package anim

import "time"

// Transition describes a value change driven by the scheduler.
type Transition struct {
	// Subject receives the interpolated value on every tick.
	Subject *float64
	// From is the starting value. It is written to Subject when the
	// transition starts.
	From float64
	// Target is the value Subject holds once the transition completes.
	Target float64
	// Duration of the transition. Zero completes on the first tick.
	Duration time.Duration
	// Easing shapes the progress curve. Nil means Linear.
	Easing Easing
	// OnTick runs after Subject is updated on each tick.
	OnTick func()
	// OnComplete runs once after the final tick.
	OnComplete func()
}

// Handle controls a scheduled transition.
type Handle interface {
	// Cancel stops the transition. No further tick or completion callback
	// fires. Cancel is idempotent.
	Cancel()
	// Active reports whether the transition is still running.
	Active() bool
}

// Scheduler registers transitions. At most one transition is active per
// subject; scheduling a second one for the same subject cancels the first.
type Scheduler interface {
	Schedule(t Transition) Handle
}
