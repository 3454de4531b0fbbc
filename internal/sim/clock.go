package sim

import "math"

// Clock is the run's simulated time source. It advances by exactly one tick
// per World.Tick and never reads the wall clock.
type Clock struct {
	rate  int
	base  float64 // seconds carried over from a restored run
	ticks int64
}

// NewClock creates a clock running at rate ticks per second, starting at base seconds.
func NewClock(rate int, base float64) Clock {
	if rate <= 0 {
		rate = 60
	}
	return Clock{rate: rate, base: base}
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.ticks++
}

// Now returns the number of ticks since the clock was created.
func (c Clock) Now() int64 {
	return c.ticks
}

// Rate returns ticks per second.
func (c Clock) Rate() int {
	return c.rate
}

// Elapsed returns simulated seconds, including the restored base.
func (c Clock) Elapsed() float64 {
	return c.base + float64(c.ticks)/float64(c.rate)
}

// Duration converts seconds into whole ticks.
func (c Clock) Duration(seconds float64) int64 {
	return int64(math.Round(seconds * float64(c.rate)))
}

// Seconds converts ticks into seconds.
func (c Clock) Seconds(ticks int64) float64 {
	return float64(ticks) / float64(c.rate)
}
