// Package config provides YAML-based runner configuration loading and the
// difficulty (game speed) controller.
package config

// RunnerConfig contains all tunables of the runner simulation.
// Entity sizes are not configured here: they come from the active skin.
type RunnerConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Speed     SpeedConfig    `yaml:"speed"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Clouds    CloudConfig    `yaml:"clouds"`
}

// FieldConfig defines the visible play field in world units.
type FieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = upward
}

// PlayerConfig defines the player's fixed horizontal position and animation rate.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	AnimEvery int     `yaml:"anim_every"` // ticks per animation frame
}

// SpeedConfig defines the game speed dial.
type SpeedConfig struct {
	Start            float64 `yaml:"start"`
	Increment        float64 `yaml:"increment"`         // added every playing tick
	AerialMultiplier float64 `yaml:"aerial_multiplier"` // aerial obstacles move faster
}

// ObstacleConfig defines obstacle spawning and removal.
type ObstacleConfig struct {
	MinInterval     int       `yaml:"min_interval"` // ticks
	MaxInterval     int       `yaml:"max_interval"` // ticks
	DespawnX        float64   `yaml:"despawn_x"`
	AerialScore     int       `yaml:"aerial_score"`
	AerialChance    float64   `yaml:"aerial_chance"`
	AerialAltitudes []float64 `yaml:"aerial_altitudes"` // bottom edge height above ground
	AnimEvery       int       `yaml:"anim_every"`
}

// CloudConfig defines cosmetic cloud spawning.
type CloudConfig struct {
	MinInterval int     `yaml:"min_interval"`
	MaxInterval int     `yaml:"max_interval"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	Height      float64 `yaml:"height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty or unknown values
// return "" which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartSpeedForPreset returns the starting game speed for a preset.
func StartSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 13
	default:
		return 10
	}
}
