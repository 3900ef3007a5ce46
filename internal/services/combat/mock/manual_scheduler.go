package mockcombat

import (
	"sync"
	"time"
)

// ManualScheduler implements combat.Scheduler for testing. Scheduled
// continuations are queued instead of timed and run only when the test
// calls Fire.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

// NewManualScheduler creates a new manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues the continuation without running it
func (m *ManualScheduler) Schedule(delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, delay)
}

// PendingCount returns how many continuations are queued
func (m *ManualScheduler) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Delays returns the delays requested so far
func (m *ManualScheduler) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.delays))
	copy(out, m.delays)
	return out
}

// Fire runs the oldest queued continuation; returns false when none is queued
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	fn()
	return true
}

// FireAll runs queued continuations until none remain, including any queued
// by the continuations themselves
func (m *ManualScheduler) FireAll() {
	for m.Fire() {
	}
}
