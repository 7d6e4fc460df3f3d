package hal

import "time"

type monoClock struct {
	start time.Time
	now   func() time.Time
}

// NewClock returns a Clock counting milliseconds from its creation.
func NewClock() Clock {
	return newMonoClock(time.Now)
}

func newMonoClock(now func() time.Time) *monoClock {
	if now == nil {
		now = time.Now
	}
	return &monoClock{start: now(), now: now}
}

func (c *monoClock) Millis() uint64 {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}
