package anim

import "time"

// Timeline is a Scheduler advanced explicitly by Tick. It is not safe for
// concurrent use; drive it from the frame loop that owns the view tree.
type Timeline struct {
	entries []*entry
}

type entry struct {
	t        Transition
	start    time.Time
	started  bool
	canceled bool
	done     bool
}

var _ Scheduler = (*Timeline)(nil)

// NewTimeline creates an empty timeline. Transitions start on the next Tick.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Schedule registers t and returns its handle. A transition already active
// on the same subject is canceled first.
func (tl *Timeline) Schedule(t Transition) Handle {
	if t.Subject != nil {
		for _, e := range tl.entries {
			if e.Active() && e.t.Subject == t.Subject {
				e.canceled = true
			}
		}
		*t.Subject = t.From
	}
	e := &entry{t: t}
	tl.entries = append(tl.entries, e)
	return e
}

// Tick advances all live transitions to now and reports whether any remain.
// Callbacks may schedule or cancel transitions; ones scheduled during the
// tick start on the next Tick.
func (tl *Timeline) Tick(now time.Time) bool {
	live := make([]*entry, len(tl.entries))
	copy(live, tl.entries)

	for _, e := range live {
		if !e.Active() {
			continue
		}
		if !e.started {
			e.started = true
			e.start = now
		}
		e.advance(now)
	}

	kept := tl.entries[:0]
	for _, e := range tl.entries {
		if e.Active() {
			kept = append(kept, e)
		}
	}
	clear(tl.entries[len(kept):])
	tl.entries = kept
	return len(tl.entries) > 0
}

// HasActive reports whether any transition is scheduled.
func (tl *Timeline) HasActive() bool {
	for _, e := range tl.entries {
		if e.Active() {
			return true
		}
	}
	return false
}

// Len returns the number of live transitions.
func (tl *Timeline) Len() int {
	n := 0
	for _, e := range tl.entries {
		if e.Active() {
			n++
		}
	}
	return n
}

// CancelAll cancels every live transition.
func (tl *Timeline) CancelAll() {
	for _, e := range tl.entries {
		e.canceled = true
	}
	tl.entries = nil
}

func (e *entry) advance(now time.Time) {
	progress := 1.0
	if e.t.Duration > 0 {
		progress = clamp01(float64(now.Sub(e.start)) / float64(e.t.Duration))
	}
	ease := e.t.Easing
	if ease == nil {
		ease = Linear
	}
	if e.t.Subject != nil {
		*e.t.Subject = e.t.From + (e.t.Target-e.t.From)*ease(progress)
	}
	if e.t.OnTick != nil {
		e.t.OnTick()
	}
	if e.canceled {
		return
	}
	if progress >= 1 {
		e.done = true
		if e.t.Subject != nil {
			*e.t.Subject = e.t.Target
		}
		if e.t.OnComplete != nil {
			e.t.OnComplete()
		}
	}
}

// Cancel implements Handle.
func (e *entry) Cancel() {
	e.canceled = true
}

// Active implements Handle.
func (e *entry) Active() bool {
	return !e.canceled && !e.done
}
