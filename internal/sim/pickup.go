package sim

import "github.com/vovakirdan/nightfall/internal/core"

// Pickup is a health drop left by a dead hostile.
type Pickup struct {
	Body

	SpawnedAt int64 // tick
}

// NewPickup creates a pickup at pos. Pickups fall but never slide.
func NewPickup(pos core.Vec2, w, h int, now int64) *Pickup {
	b := NewBody(pos, w, h)
	b.Friction = false
	return &Pickup{Body: b, SpawnedAt: now}
}

// Age returns ticks since the pickup was dropped.
func (p *Pickup) Age(now int64) int64 {
	return now - p.SpawnedAt
}

// Expired reports whether the pickup has outlived lifetime ticks.
func (p *Pickup) Expired(now, lifetime int64) bool {
	return p.Age(now) >= lifetime
}
