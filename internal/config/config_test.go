package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultRunnerConfig()

	if cfg.Field != def.Field {
		t.Errorf("field mismatch: %+v vs %+v", cfg.Field, def.Field)
	}
	if cfg.Physics != def.Physics || cfg.Player != def.Player || cfg.Speed != def.Speed {
		t.Error("physics/player/speed sections differ from hardcoded defaults")
	}
	if cfg.Clouds != def.Clouds {
		t.Errorf("clouds mismatch: %+v vs %+v", cfg.Clouds, def.Clouds)
	}
	if len(cfg.Obstacles.AerialAltitudes) != 3 {
		t.Errorf("expected 3 aerial altitudes, got %v", cfg.Obstacles.AerialAltitudes)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("speed:\n  start: 4\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Speed.Start != 4 {
		t.Errorf("Speed.Start = %v, expected 4", cfg.Speed.Start)
	}
	if cfg.Speed.Increment != 0.0025 {
		t.Errorf("untouched keys should keep defaults, increment = %v", cfg.Speed.Increment)
	}
	if cfg.Obstacles.MinInterval != 50 {
		t.Errorf("untouched sections should keep defaults, min_interval = %d", cfg.Obstacles.MinInterval)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"inverted interval", "obstacles:\n  min_interval: 200\n  max_interval: 100\n"},
		{"upward gravity", "physics:\n  gravity: -1\n"},
		{"downward jump", "physics:\n  jump_impulse: 5\n"},
		{"ground outside field", "field:\n  ground_y: 900\n"},
		{"no altitudes", "obstacles:\n  aerial_altitudes: []\n"},
		{"bad yaml", "speed: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("player:\n  x: 70\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Player.X != 70 {
		t.Errorf("Player.X = %v, expected 70", cfg.Player.X)
	}

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed.Start != 13 {
		t.Errorf("hard preset start = %v, expected 13", cfg.Speed.Start)
	}

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Speed.Increment != 0 {
		t.Errorf("fixed preset should zero the increment, got %v", cfg.Speed.Increment)
	}
	if cfg.Speed.Start != 10 {
		t.Errorf("fixed preset should keep the start speed, got %v", cfg.Speed.Start)
	}

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if cfg.Speed != DefaultRunnerConfig().Speed {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestSpeedControllerMonotonic(t *testing.T) {
	sc := NewSpeedController(DefaultRunnerConfig().Speed)
	if sc.Speed() != 10 {
		t.Fatalf("initial speed = %v, expected 10", sc.Speed())
	}

	prev := sc.Speed()
	for i := 0; i < 100000; i++ {
		sc.Advance()
		if sc.Speed() <= prev {
			t.Fatalf("speed did not increase at tick %d: %v -> %v", i, prev, sc.Speed())
		}
		prev = sc.Speed()
	}
	// No cap: 100000 ticks at 0.0025 adds 250
	if sc.Speed() < 259 {
		t.Errorf("speed appears capped: %v", sc.Speed())
	}

	if got, want := sc.AerialSpeed(), sc.Speed()*1.2; got != want {
		t.Errorf("AerialSpeed() = %v, expected %v", got, want)
	}

	sc.Reset()
	if sc.Speed() != 10 {
		t.Errorf("Reset() speed = %v, expected 10", sc.Speed())
	}
}

func TestSpeedControllerFixed(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	sc := NewSpeedController(cfg.Speed)
	for i := 0; i < 10; i++ {
		sc.Advance()
	}
	if !sc.IsFixed() || sc.Speed() != cfg.Speed.Start {
		t.Errorf("fixed controller moved: %v", sc.Speed())
	}
}
