package combat

import "time"

// Scheduler defers a continuation by a fixed pacing delay. The combat engine
// uses it for the deliberate UX pause before the enemy's turn; scheduled
// functions must re-check session state at fire time, as there is no cancel.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

type timerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (timerScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
