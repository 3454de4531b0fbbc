package config

import "math"

// DifficultyManager scales hostile parameters as the run moves through its waves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether any scaling is applied.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0) for a 1-based wave out of total.
func (d *DifficultyManager) Level(wave, total int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" || total <= 1 {
		return d.initialLevel
	}

	progress := clampF(float64(wave-1)/float64(total-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scaled hostile speed for a wave.
func (d *DifficultyManager) Speed(base float64, wave, total int) float64 {
	level := d.Level(wave, total)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Damage returns the scaled hostile contact damage for a wave, rounded to the nearest point.
func (d *DifficultyManager) Damage(base, wave, total int) int {
	level := d.Level(wave, total)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.DamageMultiplier)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
