package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "jetpack.yaml"

// Load loads the jetpack configuration.
// Search order: customPath -> ~/.jetpack/configs/jetpack.yaml -> ./configs/jetpack.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so a partial YAML only
// overrides the keys it names.
func Load(customPath string) (JetpackConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JetpackConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return JetpackConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(defaultJetpackYAML)
	if err != nil {
		return DefaultJetpackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (JetpackConfig, error) {
	cfg := DefaultJetpackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JetpackConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return JetpackConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c JetpackConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= c.World.GroundOffset {
		errs = append(errs, errors.New("world: width must be positive and height above ground offset"))
	}
	if c.Physics.MaxFuel <= 0 {
		errs = append(errs, errors.New("physics: max_fuel must be positive"))
	}
	if c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial {
		errs = append(errs, errors.New("speed: need 0 < initial <= max"))
	}
	if c.Speed.BurstFactor < 1 {
		errs = append(errs, errors.New("speed: burst_factor must be >= 1"))
	}
	for name, iv := range map[string]IntervalConfig{
		"obstacle":     c.Spawning.Obstacle,
		"enemy":        c.Spawning.Enemy,
		"powerup":      c.Spawning.Powerup,
		"boss_powerup": c.Spawning.BossPowerup,
	} {
		if iv.Min <= 0 || iv.Initial < iv.Min || iv.Decay <= 0 || iv.Decay > 1 {
			errs = append(errs, fmt.Errorf("spawning.%s: need 0 < min <= initial and 0 < decay <= 1", name))
		}
	}
	if c.Player.MaxShields < 0 {
		errs = append(errs, errors.New("player: max_shields must not be negative"))
	}
	if c.Scoreboard.TopN <= 0 {
		errs = append(errs, errors.New("scoreboard: top_n must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jetpack", "configs", filename)
}

// ApplyJetpackPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched; fixed freezes progression.
func ApplyJetpackPreset(cfg *JetpackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 2.5
		cfg.Spawning.Obstacle.Initial = 2200
		cfg.Spawning.Enemy.Initial = 10000
		cfg.Player.MaxShields = 3
	case DifficultyHard:
		cfg.Speed.Initial = 4.5
		cfg.Spawning.Obstacle.Initial = 1400
		cfg.Spawning.Enemy.Initial = 6000
		cfg.Spawning.BossIntervalMs = 45000
	case DifficultyFixed:
		cfg.Speed.Increment = 0
		cfg.Spawning.Obstacle.Decay = 1
		cfg.Spawning.Enemy.Decay = 1
		cfg.Spawning.Powerup.Decay = 1
		cfg.Spawning.BossPowerup.Decay = 1
	}
}
