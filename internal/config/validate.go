package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Clamp modes accepted by playfield.clamp_mode.
const (
	ClampModeClean  = "clean"
	ClampModeLegacy = "legacy"
)

// Validate reports every problem that would make a run impossible to start.
func (c SurvivalConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Physics.MaxSpeed <= 0 {
		bad("physics.max_speed must be positive, got %v", c.Physics.MaxSpeed)
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		bad("physics.friction must be within [0, 1], got %v", c.Physics.Friction)
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		bad("playfield size must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	}
	switch c.Playfield.ClampMode {
	case "", ClampModeClean, ClampModeLegacy:
	default:
		bad("playfield.clamp_mode %q is not one of clean, legacy", c.Playfield.ClampMode)
	}

	if c.Actor.Width <= 0 || c.Actor.Height <= 0 || c.Actor.ColWidth <= 0 || c.Actor.ColHeight <= 0 {
		bad("actor sizes must be positive")
	}
	if c.Actor.MaxHealth <= 0 {
		bad("actor.max_health must be positive, got %d", c.Actor.MaxHealth)
	}
	if c.Actor.MeleeRange <= 0 {
		bad("actor.melee_range must be positive, got %d", c.Actor.MeleeRange)
	}

	if c.Hostiles.Width <= 0 || c.Hostiles.Height <= 0 {
		bad("hostile size must be positive")
	}
	for name, v := range map[string]VariantConfig{"fast": c.Hostiles.Fast, "tank": c.Hostiles.Tank} {
		if v.Health <= 0 {
			bad("hostiles.%s.health must be positive, got %d", name, v.Health)
		}
		if v.Speed < 0 || v.Damage < 0 {
			bad("hostiles.%s speed and damage must not be negative", name)
		}
	}

	if c.Pickups.Width <= 0 || c.Pickups.Height <= 0 {
		bad("pickup size must be positive")
	}
	if c.Pickups.DropChance < 0 || c.Pickups.DropChance > 1 {
		bad("pickups.drop_chance must be within [0, 1], got %v", c.Pickups.DropChance)
	}

	if len(c.Waves.Quotas) == 0 {
		bad("waves.quotas must name at least one wave")
	}
	for i, q := range c.Waves.Quotas {
		if q < 0 {
			bad("waves.quotas[%d] must not be negative, got %d", i, q)
		}
	}
	if c.Waves.MaxOnScreen < 1 {
		bad("waves.max_on_screen must be at least 1, got %d", c.Waves.MaxOnScreen)
	}

	if c.Cycle.Interval <= 0 {
		bad("cycle.interval must be positive, got %v", c.Cycle.Interval)
	}

	if c.Terrain.TileSize <= 0 {
		bad("terrain.tile_size must be positive, got %d", c.Terrain.TileSize)
	}
	for i, p := range c.Terrain.Platforms {
		if p.W <= 0 || p.H <= 0 {
			bad("terrain.platforms[%d] has non-positive size %dx%d", i, p.W, p.H)
		}
	}

	switch c.Difficulty.Progression.Type {
	case "", "wave", "none":
	default:
		bad("difficulty.progression.type %q is not one of wave, none", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
