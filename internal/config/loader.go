package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// A custom path is explicit, so failures are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file may override
// only the keys it cares about, and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height {
		errs = append(errs, errors.New("field.ground_y must be inside the field"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be negative"))
	}
	if c.Speed.Start <= 0 {
		errs = append(errs, errors.New("speed.start must be positive"))
	}
	if c.Speed.Increment < 0 {
		errs = append(errs, errors.New("speed.increment must not be negative"))
	}
	if err := validInterval("obstacles", c.Obstacles.MinInterval, c.Obstacles.MaxInterval); err != nil {
		errs = append(errs, err)
	}
	if err := validInterval("clouds", c.Clouds.MinInterval, c.Clouds.MaxInterval); err != nil {
		errs = append(errs, err)
	}
	if len(c.Obstacles.AerialAltitudes) == 0 {
		errs = append(errs, errors.New("obstacles.aerial_altitudes must not be empty"))
	}
	if c.Obstacles.AerialChance < 0 || c.Obstacles.AerialChance > 1 {
		errs = append(errs, errors.New("obstacles.aerial_chance must be within [0, 1]"))
	}
	if c.Clouds.MinSpeed > c.Clouds.MaxSpeed || c.Clouds.MinWidth > c.Clouds.MaxWidth || c.Clouds.MinY > c.Clouds.MaxY {
		errs = append(errs, errors.New("clouds ranges must have min <= max"))
	}
	if c.Player.AnimEvery <= 0 || c.Obstacles.AnimEvery <= 0 {
		errs = append(errs, errors.New("anim_every must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

func validInterval(section string, lo, hi int) error {
	if lo <= 0 || hi < lo {
		return fmt.Errorf("%s interval must satisfy 0 < min_interval <= max_interval (got %d..%d)", section, lo, hi)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset freezes the speed at its starting value; no preset caps it.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	default:
		cfg.Speed.Start = StartSpeedForPreset(preset)
	}
}
