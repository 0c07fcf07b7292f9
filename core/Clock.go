package core

import "time"

// TimeSource is the clock's view of wall time.
type TimeSource interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemTime reads the monotonic system clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

func (SystemTime) Sleep(d time.Duration) { time.Sleep(d) }

// Clock paces the loop to TickInterval and hands out clamped deltas.
type Clock struct {
	src  TimeSource
	last time.Time
}

func NewClock(src TimeSource) *Clock {
	return &Clock{src: src, last: src.Now()}
}

// Tick blocks until at least TickInterval has passed since the previous tick,
// then returns the elapsed seconds, never more than MaxDelta.
func (c *Clock) Tick() float64 {
	now := c.src.Now()
	for elapsed := now.Sub(c.last); elapsed < TickInterval; elapsed = now.Sub(c.last) {
		c.src.Sleep(TickInterval - elapsed)
		now = c.src.Now()
	}

	dt := now.Sub(c.last).Seconds()
	if dt > MaxDelta {
		dt = MaxDelta
	}
	c.last = now
	return dt
}

// LastTick is the timestamp recorded by the most recent Tick.
func (c *Clock) LastTick() time.Time {
	return c.last
}
