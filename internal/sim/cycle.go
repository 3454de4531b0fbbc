package sim

// Phase is the ambient day/night state. It only affects rendering.
type Phase int

const (
	PhaseDay Phase = iota
	PhaseNight
)

func (p Phase) String() string {
	switch p {
	case PhaseDay:
		return "day"
	case PhaseNight:
		return "night"
	default:
		return "unknown"
	}
}

// Valid reports whether p is day or night.
func (p Phase) Valid() bool {
	return p == PhaseDay || p == PhaseNight
}

// Cycle toggles between day and night every interval ticks.
type Cycle struct {
	phase    Phase
	since    int64
	interval int64
}

// NewCycle starts a day at tick now.
func NewCycle(interval, now int64) Cycle {
	return Cycle{phase: PhaseDay, since: now, interval: interval}
}

// Update toggles the phase once the interval has elapsed.
func (c *Cycle) Update(now int64) bool {
	if now-c.since < c.interval {
		return false
	}
	if c.phase == PhaseDay {
		c.phase = PhaseNight
	} else {
		c.phase = PhaseDay
	}
	c.since = now
	return true
}

// SetPhase forces a phase and restarts the timer. Unknown phases are ignored.
func (c *Cycle) SetPhase(p Phase, now int64) bool {
	if !p.Valid() {
		return false
	}
	c.phase = p
	c.since = now
	return true
}

// Phase returns the current phase.
func (c Cycle) Phase() Phase {
	return c.phase
}

// Remaining returns ticks until the next toggle.
func (c Cycle) Remaining(now int64) int64 {
	r := c.interval - (now - c.since)
	if r < 0 {
		return 0
	}
	return r
}
