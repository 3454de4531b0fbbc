package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the built-in survival configuration.
// It mirrors defaults/survival.yaml and is the fallback when the embedded
// document cannot be parsed.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpForce:   -13,
			PlayerAccel: 0.8,
			Friction:    0.7,
			MaxSpeed:    5,
		},
		Playfield: PlayfieldConfig{
			Width:     800,
			Height:    600,
			ClampMode: "clean",
		},
		Actor: ActorConfig{
			StartX:         96,
			StartY:         272,
			Width:          48,
			Height:         48,
			ColWidth:       48,
			ColHeight:      48,
			MaxHealth:      100,
			AttackCooldown: 0.5,
			MeleeDamage:    25,
			MeleeRange:     100,
		},
		Hostiles: HostileConfig{
			Width:           32,
			Height:          32,
			ContactCooldown: 1.0,
			DeadZone:        5,
			Fast:            VariantConfig{Speed: 2.0, Damage: 5, Health: 50},
			Tank:            VariantConfig{Speed: 0.5, Damage: 10, Health: 100},
		},
		Pickups: PickupConfig{
			Width:      16,
			Height:     16,
			Lifetime:   10.0,
			Restore:    20,
			DropChance: 0.5,
		},
		Waves: WaveConfig{
			Quotas:      []int{15, 20, 25, 30, 35},
			MaxOnScreen: 5,
			KillScore:   100,
		},
		Cycle: CycleConfig{
			Interval: 30.0,
		},
		Terrain: TerrainConfig{
			TileSize: 32,
			Platforms: []PlatformConfig{
				{X: 0, Y: 17, W: 30, H: 2}, // ground
				{X: 2, Y: 12, W: 8, H: 1},
				{X: 15, Y: 12, W: 8, H: 1},
				{X: 10, Y: 8, W: 5, H: 1},
				{X: 2, Y: 4, W: 8, H: 1},
				{X: 15, Y: 4, W: 8, H: 1},
			},
		},
		Files: FilesConfig{
			Save:      "savegame.dat",
			HighScore: "highscore.dat",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "wave"},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				DamageMultiplier: 1.0,
			},
		},
	}
}
