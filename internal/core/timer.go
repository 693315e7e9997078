package core

import "time"

// MaxSpeed is the fastest selectable game speed.
const MaxSpeed = 4

// turnIntervals maps a game speed to the wall-clock time per turn. Speed 0 is
// paused.
var turnIntervals = [MaxSpeed + 1]time.Duration{
	0,
	500 * time.Millisecond,
	250 * time.Millisecond,
	125 * time.Millisecond,
	50 * time.Millisecond,
}

// TurnClock converts elapsed wall-clock time into whole simulation turns at
// the selected game speed.
type TurnClock struct {
	speed       int
	resumeSpeed int
	accumulator time.Duration
}

// NewTurnClock returns a paused clock that resumes at speed 1.
func NewTurnClock() *TurnClock {
	return &TurnClock{resumeSpeed: 1}
}

// Speed reports the current game speed in [0, MaxSpeed].
func (c *TurnClock) Speed() int { return c.speed }

// Interval returns the time per turn at the current speed, or 0 when paused.
func (c *TurnClock) Interval() time.Duration { return turnIntervals[c.speed] }

// Paused reports whether the clock is stopped.
func (c *TurnClock) Paused() bool { return c.speed == 0 }

// SetSpeed clamps speed into [0, MaxSpeed]. Pausing remembers the previous
// speed so SetPaused(false) can restore it.
func (c *TurnClock) SetSpeed(speed int) {
	if speed < 0 {
		speed = 0
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	if speed == c.speed {
		return
	}
	c.accumulator = 0
	if speed == 0 {
		c.resumeSpeed = c.speed
		c.speed = 0
		return
	}
	c.speed = speed
}

// SetPaused pauses or resumes the clock.
func (c *TurnClock) SetPaused(paused bool) {
	if paused {
		c.SetSpeed(0)
		return
	}
	c.SetSpeed(c.resumeSpeed)
}

// Faster increases the speed by one step.
func (c *TurnClock) Faster() { c.SetSpeed(c.speed + 1) }

// Slower decreases the speed by one step.
func (c *TurnClock) Slower() { c.SetSpeed(c.speed - 1) }

// Advance adds elapsed time and returns how many turns are due.
func (c *TurnClock) Advance(elapsed time.Duration) int {
	interval := c.Interval()
	if interval <= 0 || elapsed <= 0 {
		return 0
	}
	c.accumulator += elapsed
	turns := int(c.accumulator / interval)
	c.accumulator -= time.Duration(turns) * interval
	return turns
}
