package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:   800,
			Height:  400,
			GroundY: 300,
		},
		Physics: PhysicsConfig{
			Gravity:     1,
			JumpImpulse: -18,
		},
		Player: PlayerConfig{
			X:         50,
			AnimEvery: 10,
		},
		Speed: SpeedConfig{
			Start:            10,
			Increment:        0.0025,
			AerialMultiplier: 1.2,
		},
		Obstacles: ObstacleConfig{
			MinInterval:     50,
			MaxInterval:     150,
			DespawnX:        -100,
			AerialScore:     700,
			AerialChance:    0.3,
			AerialAltitudes: []float64{100, 50, 30},
			AnimEvery:       10,
		},
		Clouds: CloudConfig{
			MinInterval: 100,
			MaxInterval: 300,
			MinY:        50,
			MaxY:        150,
			MinSpeed:    0.5,
			MaxSpeed:    1.5,
			MinWidth:    60,
			MaxWidth:    120,
			Height:      30,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `runner config`
// style dumps and tests.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
