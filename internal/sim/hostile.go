package sim

import (
	"github.com/vovakirdan/nightfall/internal/core"
)

// Variant selects a hostile's fixed parameter set.
type Variant int

const (
	VariantFast Variant = iota
	VariantTank
)

func (v Variant) String() string {
	switch v {
	case VariantFast:
		return "fast"
	case VariantTank:
		return "tank"
	default:
		return "unknown"
	}
}

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v == VariantFast || v == VariantTank
}

// HostileState is Alive until health reaches zero.
type HostileState int

const (
	HostileAlive HostileState = iota
	HostileDead
)

// Hostile is a pursuing agent.
type Hostile struct {
	Body

	Variant   Variant
	Speed     float64
	Damage    int
	Health    int
	MaxHealth int

	dealt      bool // false until the first contact hit
	lastDamage int64
}

// NewHostile creates a hostile at pos with the given stats.
func NewHostile(v Variant, pos core.Vec2, w, h int, speed float64, damage, health int) *Hostile {
	return &Hostile{
		Body:      NewBody(pos, w, h),
		Variant:   v,
		Speed:     speed,
		Damage:    damage,
		Health:    health,
		MaxHealth: health,
	}
}

// Steer sets horizontal velocity toward targetX. Within deadZone it stops.
func (h *Hostile) Steer(targetX, deadZone float64) {
	dx := targetX - h.Pos.X
	switch {
	case dx > deadZone:
		h.Vel.X = h.Speed
	case dx < -deadZone:
		h.Vel.X = -h.Speed
	default:
		h.Vel.X = 0
	}
}

// TryContact damages the actor if the boxes overlap and the cooldown has elapsed.
func (h *Hostile) TryContact(a *Actor, now, cooldown int64) bool {
	if !h.Rect().Intersects(a.Rect()) {
		return false
	}
	if h.dealt && now-h.lastDamage < cooldown {
		return false
	}
	a.Damage(h.Damage)
	h.dealt = true
	h.lastDamage = now
	return true
}

// TakeDamage reduces health and reports whether the hostile died from it.
func (h *Hostile) TakeDamage(n int) bool {
	if h.State() == HostileDead {
		return false
	}
	h.Health -= n
	return h.State() == HostileDead
}

// State returns Dead once health is at or below zero.
func (h *Hostile) State() HostileState {
	if h.Health <= 0 {
		return HostileDead
	}
	return HostileAlive
}
