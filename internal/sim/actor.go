package sim

import (
	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

// Actor is the player-controlled body.
type Actor struct {
	Body

	Health    int
	MaxHealth int
	Facing    int // -1 left, +1 right

	meleeRange int
	jumpLatch  bool // set by a jump, cleared by the jump release intent
	attacking  bool
	attacked   bool // false until the first attack
	lastAttack int64
}

// NewActor creates the actor at its configured start position with full health.
func NewActor(cfg config.ActorConfig) *Actor {
	b := NewBody(core.V(cfg.StartX, cfg.StartY), cfg.Width, cfg.Height)
	b.ColW, b.ColH = cfg.ColWidth, cfg.ColHeight
	return &Actor{
		Body:       b,
		Health:     cfg.MaxHealth,
		MaxHealth:  cfg.MaxHealth,
		Facing:     1,
		meleeRange: cfg.MeleeRange,
	}
}

// ApplyMovement accelerates horizontally toward dir (-1 or +1).
func (a *Actor) ApplyMovement(dir int, p config.PhysicsConfig) {
	if dir == 0 {
		return
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	a.Facing = dir
	a.Accelerate(float64(dir)*p.PlayerAccel, 0, p.MaxSpeed)
}

// Jump launches the actor when it stands on ground and the previous jump was released.
func (a *Actor) Jump(force float64) bool {
	if !a.OnGround || a.jumpLatch {
		return false
	}
	a.Vel.Y = force
	a.OnGround = false
	a.jumpLatch = true
	return true
}

// ReleaseJump allows the next jump.
func (a *Actor) ReleaseJump() {
	a.jumpLatch = false
}

// Attack arms the melee hitbox for the current tick if the cooldown has elapsed.
func (a *Actor) Attack(now, cooldown int64) bool {
	if a.attacked && now-a.lastAttack < cooldown {
		return false
	}
	a.attacking = true
	a.attacked = true
	a.lastAttack = now
	return true
}

// Attacking reports whether the melee hitbox is armed.
func (a *Actor) Attacking() bool {
	return a.attacking
}

// Disarm clears the melee hitbox at the end of the combat pass.
func (a *Actor) Disarm() {
	a.attacking = false
}

// MeleeBox is a square of side MeleeRange centred on the actor.
func (a *Actor) MeleeBox() core.Rect {
	cx := a.Pos.X + float64(a.W)/2
	cy := a.Pos.Y + float64(a.H)/2
	half := float64(a.meleeRange) / 2
	return core.NewRect(int(cx-half), int(cy-half), a.meleeRange, a.meleeRange)
}

// Heal restores health up to MaxHealth.
func (a *Actor) Heal(n int) {
	a.Health = core.Clamp(a.Health+n, 0, a.MaxHealth)
}

// Damage removes health, never below zero.
func (a *Actor) Damage(n int) {
	a.Health = core.Clamp(a.Health-n, 0, a.MaxHealth)
}

// Alive reports whether the actor still has health.
func (a *Actor) Alive() bool {
	return a.Health > 0
}
