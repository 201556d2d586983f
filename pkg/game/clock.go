package game

import "time"

// Clock tracks the timestamp of the previous frame. Only the game loop
// touches it, once per frame.
type Clock struct {
	last  time.Time
	armed bool
}

// Arm sets the reference timestamp. The initializer calls this once per
// boot, right before the first frame.
func (c *Clock) Arm(now time.Time) {
	c.last = now
	c.armed = true
}

// Armed reports whether Arm has run.
func (c *Clock) Armed() bool {
	return c.armed
}

// Delta returns the elapsed seconds since the previous frame and
// advances the reference. The reference never decreases: a host
// timestamp earlier than the previous one yields a zero delta, and a
// zero delta is a valid frame.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.armed {
		return 0
	}
	if !now.After(c.last) {
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	return d
}
