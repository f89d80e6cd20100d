// Package sim holds the GPU-free part of the solar system: the pausable
// simulation clock, body kinematics, and the parent relation between bodies.
package sim

import "time"

// Clock converts wall-clock elapsed time into simulation time.
//
// While paused, simulation time is frozen at the moment the pause started.
// On resume the paused interval is added to an offset, so motion continues
// from where it stopped instead of jumping ahead.
type Clock struct {
	paused      bool
	pauseStart  time.Duration
	pausedTotal time.Duration
}

// NewClock creates a running clock.
func NewClock() *Clock {
	return &Clock{}
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// PausedTotal returns the accumulated paused duration of completed pauses.
func (c *Clock) PausedTotal() time.Duration {
	return c.pausedTotal
}

// Toggle pauses or resumes the clock at wall time now and returns the new
// paused state.
func (c *Clock) Toggle(now time.Duration) bool {
	if c.paused {
		c.Resume(now)
	} else {
		c.Pause(now)
	}
	return c.paused
}

// Pause freezes simulation time at wall time now. No-op if already paused.
func (c *Clock) Pause(now time.Duration) {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = now
}

// Resume restarts simulation time at wall time now. No-op if running.
func (c *Clock) Resume(now time.Duration) {
	if !c.paused {
		return
	}
	c.paused = false
	c.pausedTotal += now - c.pauseStart
}

// Elapsed returns the simulation time for wall time now.
func (c *Clock) Elapsed(now time.Duration) time.Duration {
	if c.paused {
		return c.pauseStart - c.pausedTotal
	}
	return now - c.pausedTotal
}

// Seconds returns Elapsed(now) in seconds, the unit used by body updates.
func (c *Clock) Seconds(now time.Duration) float32 {
	return float32(c.Elapsed(now).Seconds())
}
