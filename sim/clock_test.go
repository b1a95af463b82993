package sim

import "testing"

func TestClockRunsWholeSteps(t *testing.T) {
	c := NewClock(0.1, 10)
	ticks := 0
	tick := func(dt float64) {
		if dt != 0.1 {
			t.Fatalf("dt = %v, want 0.1", dt)
		}
		ticks++
	}
	if n := c.Advance(0.05, tick); n != 0 {
		t.Fatalf("partial step ran %d ticks", n)
	}
	if n := c.Advance(0.26, tick); n != 3 {
		t.Fatalf("ran %d ticks, want 3", n)
	}
	if ticks != 3 {
		t.Fatalf("tick called %d times", ticks)
	}
}

func TestClockDropsBacklog(t *testing.T) {
	c := NewClock(0.1, 2)
	if n := c.Advance(5, func(float64) {}); n != 2 {
		t.Fatalf("ran %d ticks, want 2", n)
	}
	if n := c.Advance(0, func(float64) {}); n != 0 {
		t.Fatalf("backlog was kept: %d ticks", n)
	}
}

func TestClockDefaults(t *testing.T) {
	c := NewClock(0, 0)
	if c.Step() != 1.0/60 {
		t.Fatalf("step = %v", c.Step())
	}
	c.Advance(1.0/120, func(float64) {})
	c.Reset()
	if n := c.Advance(1.0/120, func(float64) {}); n != 0 {
		t.Fatalf("reset kept accumulated time")
	}
}
