package sim

import "github.com/vovakirdan/nightfall/internal/core"

// ActorView is the render-facing state of the actor.
type ActorView struct {
	Box       core.Rect
	Vel       core.Vec2
	Health    int
	MaxHealth int
	Facing    int
	OnGround  bool
	Melee     core.Rect
	Swung     bool // the melee box was armed during the last tick
}

// HostileView is the render-facing state of a hostile.
type HostileView struct {
	Box       core.Rect
	Variant   Variant
	Health    int
	MaxHealth int
}

// PickupView is the render-facing state of a pickup.
type PickupView struct {
	Box       core.Rect
	Remaining float64 // seconds until expiry
}

// View is a read-only copy of everything the presentation layer draws.
type View struct {
	Width, Height int
	Terrain       []core.Rect
	Actor         ActorView
	Hostiles      []HostileView
	Pickups       []PickupView
	Score         int
	Waves         WaveState
	Phase         Phase
	Outcome       Outcome
	Elapsed       float64
	Tick          int64
}

// View returns a copy of the current state for rendering.
func (w *World) View() View {
	now := w.clock.Now()
	a := w.actor

	v := View{
		Width:   w.cfg.Playfield.Width,
		Height:  w.cfg.Playfield.Height,
		Terrain: w.terrain.Rects(),
		Actor: ActorView{
			Box:       a.Rect(),
			Vel:       a.Vel,
			Health:    a.Health,
			MaxHealth: a.MaxHealth,
			Facing:    a.Facing,
			OnGround:  a.OnGround,
			Melee:     a.MeleeBox(),
			Swung:     w.lastMelee,
		},
		Score:   w.score,
		Waves:   w.waves.State(),
		Phase:   w.cycle.Phase(),
		Outcome: w.outcome,
		Elapsed: w.clock.Elapsed(),
		Tick:    now,
	}

	hostiles := w.waves.Hostiles()
	v.Hostiles = make([]HostileView, len(hostiles))
	for i, h := range hostiles {
		v.Hostiles[i] = HostileView{Box: h.Rect(), Variant: h.Variant, Health: h.Health, MaxHealth: h.MaxHealth}
	}

	pickups := w.waves.Pickups()
	v.Pickups = make([]PickupView, len(pickups))
	for i, p := range pickups {
		left := w.pickupLifetime - p.Age(now)
		if left < 0 {
			left = 0
		}
		v.Pickups[i] = PickupView{Box: p.Rect(), Remaining: w.clock.Seconds(left)}
	}
	return v
}
