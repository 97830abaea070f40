package anim

// Immediate is a Scheduler that runs every transition to completion inside
// Schedule. Views use it when no frame loop is attached.
type Immediate struct{}

var _ Scheduler = Immediate{}

// Schedule writes the target, fires OnTick and OnComplete, and returns an
// inactive handle.
func (Immediate) Schedule(t Transition) Handle {
	if t.Subject != nil {
		*t.Subject = t.Target
	}
	if t.OnTick != nil {
		t.OnTick()
	}
	if t.OnComplete != nil {
		t.OnComplete()
	}
	return &entry{t: t, done: true}
}
