package runner

import "math/rand"

// Spawner is a randomized interval timer. Every tick it counts up; when the
// count reaches the current threshold it fires, restarts from zero and draws
// a new threshold uniformly from [Min, Max].
type Spawner struct {
	Min, Max  int
	timer     int
	threshold int
	rng       *rand.Rand
}

// NewSpawner creates a spawner drawing thresholds from rng.
func NewSpawner(minTicks, maxTicks int, rng *rand.Rand) *Spawner {
	s := &Spawner{Min: minTicks, Max: maxTicks, rng: rng}
	s.Reset()
	return s
}

// Reset zeroes the timer and draws a fresh threshold.
func (s *Spawner) Reset() {
	s.timer = 0
	s.draw()
}

// Tick advances the timer and reports whether an entity should spawn.
func (s *Spawner) Tick() bool {
	s.timer++
	if s.timer < s.threshold {
		return false
	}
	s.timer = 0
	s.draw()
	return true
}

// Timer returns the ticks counted since the last spawn.
func (s *Spawner) Timer() int {
	return s.timer
}

// Threshold returns the tick count at which the spawner fires next.
func (s *Spawner) Threshold() int {
	return s.threshold
}

func (s *Spawner) draw() {
	s.threshold = s.Min
	if s.Max > s.Min {
		s.threshold = s.Min + s.rng.Intn(s.Max-s.Min+1)
	}
}
