package core

import (
	"sync"
	"time"
)

// ManualTime is a TimeSource that only moves when told to. Sleep advances it
// by the requested duration instead of blocking, which makes the clock fully
// deterministic in tests and scripted runs.
type ManualTime struct {
	mu      sync.RWMutex
	current time.Time
	slept   time.Duration
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *ManualTime) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	m.slept += d
}

// Advance moves time forward without counting it as sleep.
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Slept is the total duration passed to Sleep so far.
func (m *ManualTime) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}
