// Package config provides YAML-based survival configuration loading,
// validation and difficulty presets.
package config

// SurvivalConfig contains every tunable of a survival run.
type SurvivalConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Actor      ActorConfig      `yaml:"actor"`
	Hostiles   HostileConfig    `yaml:"hostiles"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Waves      WaveConfig       `yaml:"waves"`
	Cycle      CycleConfig      `yaml:"cycle"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Files      FilesConfig      `yaml:"files"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig holds the per-tick integration constants.
// Values are applied once per tick, not scaled by elapsed time.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpForce   float64 `yaml:"jump_force"` // negative is up
	PlayerAccel float64 `yaml:"player_accel"`
	Friction    float64 `yaml:"friction"` // velocity multiplier while grounded and undriven
	MaxSpeed    float64 `yaml:"max_speed"`
}

// PlayfieldConfig defines the pixel-space arena.
type PlayfieldConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	ClampMode string `yaml:"clamp_mode"` // "clean" or "legacy"
}

// ActorConfig defines the player-controlled body.
type ActorConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	ColWidth       int     `yaml:"col_width"`
	ColHeight      int     `yaml:"col_height"`
	MaxHealth      int     `yaml:"max_health"`
	AttackCooldown float64 `yaml:"attack_cooldown"` // seconds
	MeleeDamage    int     `yaml:"melee_damage"`
	MeleeRange     int     `yaml:"melee_range"` // side of the square hitbox
}

// VariantConfig is the fixed parameter set of one hostile variant.
type VariantConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
	Health int     `yaml:"health"`
}

// HostileConfig defines pursuing agents.
type HostileConfig struct {
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	ContactCooldown float64       `yaml:"contact_cooldown"` // seconds between contact hits
	DeadZone        float64       `yaml:"dead_zone"`        // no steering within this x distance
	Fast            VariantConfig `yaml:"fast"`
	Tank            VariantConfig `yaml:"tank"`
}

// PickupConfig defines recovery drops.
type PickupConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Lifetime   float64 `yaml:"lifetime"` // seconds
	Restore    int     `yaml:"restore"`
	DropChance float64 `yaml:"drop_chance"` // 0..1
}

// WaveConfig defines the spawn schedule.
type WaveConfig struct {
	Quotas      []int `yaml:"quotas,flow"` // hostiles per wave; len is the wave count
	MaxOnScreen int   `yaml:"max_on_screen"`
	KillScore   int   `yaml:"kill_score"`
}

// CycleConfig defines the day/night toggle.
type CycleConfig struct {
	Interval float64 `yaml:"interval"` // seconds per phase
}

// PlatformConfig is a rectangle in tile units.
type PlatformConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// TerrainConfig is the ordered static platform list.
// Order matters: collision snapping picks the first match.
type TerrainConfig struct {
	TileSize  int              `yaml:"tile_size"`
	Platforms []PlatformConfig `yaml:"platforms"`
}

// FilesConfig names the save and high-score files.
// Relative paths are resolved against the data directory.
type FilesConfig struct {
	Save      string `yaml:"save"`
	HighScore string `yaml:"high_score"`
}

// DifficultyConfig defines optional per-wave hostile scaling.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type string `yaml:"type"` // "wave" or "none"
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to hostile speed factor at max level
	DamageMultiplier float64 `yaml:"damage_multiplier"` // added to hostile damage factor at max level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
