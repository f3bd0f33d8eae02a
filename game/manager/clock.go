package manager

import "time"

// maxCatchUp caps how many ticks a single long frame may trigger.
const maxCatchUp = 5

// Clock turns variable frame deltas into a whole number of fixed ticks.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Clock{interval: interval}
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Advance adds dt and returns how many ticks are due. Whole intervals owed
// beyond maxCatchUp ticks are dropped; the partial interval carries over.
func (c *Clock) Advance(dt time.Duration) int {
	if dt > 0 {
		c.acc += dt
	}
	n := 0
	for c.acc >= c.interval {
		c.acc -= c.interval
		n++
		if n == maxCatchUp {
			c.acc %= c.interval
			break
		}
	}
	return n
}

func (c *Clock) Reset() {
	c.acc = 0
}
