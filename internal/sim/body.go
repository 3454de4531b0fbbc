// Package sim is the survival simulation: kinematic bodies on a static tile
// terrain, a shared collision resolver, the actor, pursuing hostiles,
// recovery pickups, the wave scheduler, combat and the day/night cycle.
//
// The simulation is single-threaded and tick-driven. Physics is integrated
// once per tick with fixed per-tick constants, so simulated speed depends on
// the tick rate. All timers count ticks of the run's Clock.
package sim

import (
	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

// Body is the kinematic state shared by every simulated entity.
type Body struct {
	Pos core.Vec2 // top-left corner, pixels
	Vel core.Vec2 // pixels per tick

	W, H       int // visual box, used for snapping and intersection
	ColW, ColH int // collision box extent, used by the terrain probes

	OnGround bool
	Gravity  bool
	Friction bool
}

// NewBody creates a body at pos with matching visual and collision boxes.
func NewBody(pos core.Vec2, w, h int) Body {
	return Body{
		Pos:      pos,
		W:        w,
		H:        h,
		ColW:     w,
		ColH:     h,
		Gravity:  true,
		Friction: true,
	}
}

// Integrate advances the body by one tick.
// Friction only applies while grounded and not driven by input or steering.
func (b *Body) Integrate(p config.PhysicsConfig, driven bool) {
	if b.Gravity {
		b.Vel.Y += p.Gravity
	}
	if b.OnGround && b.Friction && !driven {
		b.Vel.X *= p.Friction
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// Accelerate adds to the velocity. Horizontal speed is clamped to ±maxSpeed;
// vertical speed is not.
func (b *Body) Accelerate(dx, dy, maxSpeed float64) {
	b.Vel.X = core.ClampF(b.Vel.X+dx, -maxSpeed, maxSpeed)
	b.Vel.Y += dy
}

// Rect returns the visual box with the position truncated to whole pixels.
func (b *Body) Rect() core.Rect {
	return core.NewRect(int(b.Pos.X), int(b.Pos.Y), b.W, b.H)
}
