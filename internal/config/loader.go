package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival configuration and validates it.
// Search order: customPath -> ~/.nightfall/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
//
// Documents are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decodeOver(&cfg, data); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survival.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := tryDecode(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "survival.yaml")); err == nil {
		if loaded, ok := tryDecode(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := tryDecode(defaultSurvivalYAML); ok {
		return loaded, nil
	}
	return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeOver unmarshals data on top of cfg. Slices named in the document
// replace the defaults instead of merging with them.
func decodeOver(cfg *SurvivalConfig, data []byte) error {
	var probe struct {
		Waves struct {
			Quotas []int `yaml:"quotas"`
		} `yaml:"waves"`
		Terrain struct {
			Platforms []PlatformConfig `yaml:"platforms"`
		} `yaml:"terrain"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Waves.Quotas != nil {
		cfg.Waves.Quotas = nil
	}
	if probe.Terrain.Platforms != nil {
		cfg.Terrain.Platforms = nil
	}
	return yaml.Unmarshal(data, cfg)
}

// tryDecode decodes an optional config source; invalid sources are skipped.
func tryDecode(data []byte) (SurvivalConfig, bool) {
	cfg := DefaultSurvivalConfig()
	if err := decodeOver(&cfg, data); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nightfall", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is returned unchanged when home cannot be resolved.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator)))
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the schedule on top of the scaling level
	switch preset {
	case DifficultyEasy:
		cfg.Waves.MaxOnScreen = 3
		cfg.Waves.Quotas = scaleQuotas(cfg.Waves.Quotas, 0.6)
		cfg.Pickups.DropChance = 0.75
	case DifficultyHard:
		cfg.Waves.MaxOnScreen = 7
		cfg.Waves.Quotas = scaleQuotas(cfg.Waves.Quotas, 1.4)
		cfg.Pickups.DropChance = 0.3
	}
}

func scaleQuotas(quotas []int, factor float64) []int {
	out := make([]int, len(quotas))
	for i, q := range quotas {
		n := int(float64(q)*factor + 0.5)
		if n < 1 {
			n = 1
		}
		out[i] = n
	}
	return out
}
