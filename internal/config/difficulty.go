package config

// SpeedController is the single difficulty dial of a session.
// Speed grows linearly by a fixed increment per playing tick and is never capped.
type SpeedController struct {
	cfg   SpeedConfig
	speed float64
}

// NewSpeedController creates a controller at the configured start speed.
func NewSpeedController(cfg SpeedConfig) *SpeedController {
	return &SpeedController{cfg: cfg, speed: cfg.Start}
}

// Reset returns the speed to its starting value.
func (s *SpeedController) Reset() {
	s.speed = s.cfg.Start
}

// Advance applies one playing tick of acceleration.
func (s *SpeedController) Advance() {
	s.speed += s.cfg.Increment
}

// Speed returns the current ground speed in world units per tick.
func (s *SpeedController) Speed() float64 {
	return s.speed
}

// AerialSpeed returns the speed of aerial obstacles.
func (s *SpeedController) AerialSpeed() float64 {
	return s.speed * s.cfg.AerialMultiplier
}

// IsFixed reports whether the speed never changes.
func (s *SpeedController) IsFixed() bool {
	return s.cfg.Increment == 0
}
