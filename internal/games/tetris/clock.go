package tetris

import "time"

// Clock is the gravity timer, measured in simulated time so that a run is
// reproducible from its seed and inputs. Arm discards whatever was pending,
// so a tick scheduled for an earlier level or game can never fire.
type Clock struct {
	interval time.Duration
	elapsed  time.Duration
	armed    bool
}

// Arm (re)starts the clock with a new period.
func (c *Clock) Arm(interval time.Duration) {
	c.interval = interval
	c.elapsed = 0
	c.armed = interval > 0
}

// Stop disarms the clock. Advance does nothing until the next Arm.
func (c *Clock) Stop() {
	c.armed = false
	c.elapsed = 0
}

// Armed reports whether the clock is running.
func (c *Clock) Armed() bool {
	return c.armed
}

// Interval returns the current period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Advance moves the clock forward by dt and reports whether a period elapsed.
// At most one tick fires per call; the remainder carries over.
func (c *Clock) Advance(dt time.Duration) bool {
	if !c.armed {
		return false
	}
	c.elapsed += dt
	if c.elapsed < c.interval {
		return false
	}
	c.elapsed -= c.interval
	if c.elapsed > c.interval {
		c.elapsed = c.interval
	}
	return true
}
