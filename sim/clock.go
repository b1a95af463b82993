package sim

// Clock turns variable frame times into fixed simulation steps.
type Clock struct {
	step     float64
	maxSteps int
	acc      float64
}

// NewClock builds a clock advancing in increments of step seconds. maxSteps
// bounds catch-up work per Advance; values <= 0 default to 5.
func NewClock(step float64, maxSteps int) *Clock {
	if step <= 0 {
		step = 1.0 / 60
	}
	if maxSteps <= 0 {
		maxSteps = 5
	}
	return &Clock{step: step, maxSteps: maxSteps}
}

// Step returns the fixed step length in seconds.
func (c *Clock) Step() float64 { return c.step }

// Advance adds elapsed seconds and calls tick once per whole step accumulated.
// Backlog past maxSteps is dropped. It returns the number of ticks run.
func (c *Clock) Advance(elapsed float64, tick func(dt float64)) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := 0
	for c.acc >= c.step && n < c.maxSteps {
		c.acc -= c.step
		tick(c.step)
		n++
	}
	if n == c.maxSteps && c.acc >= c.step {
		c.acc = 0
	}
	return n
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
