package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func TestParseTrace(t *testing.T) {
	in := `# warm up
0 start

5 jump
5 duck_up
120 restart
`
	trace, err := parseTrace(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parseTrace: %v", err)
	}
	if got := trace[0]; len(got) != 1 || got[0] != core.EventStart {
		t.Errorf("tick 0 = %v, want [start]", got)
	}
	if got := trace[5]; len(got) != 2 || got[0] != core.EventJump || got[1] != core.EventDuckRelease {
		t.Errorf("tick 5 = %v, want [jump duck_up]", got)
	}
	if got := trace[120]; len(got) != 1 || got[0] != core.EventRestart {
		t.Errorf("tick 120 = %v, want [restart]", got)
	}
}

func TestParseTraceErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing event", "10"},
		{"extra field", "10 jump now"},
		{"bad tick", "x jump"},
		{"negative tick", "-1 jump"},
		{"unknown event", "3 fly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTrace(strings.NewReader(tt.in)); err == nil {
				t.Errorf("parseTrace(%q) succeeded, want error", tt.in)
			}
		})
	}
}

func TestTraceSourceReplaysPerTick(t *testing.T) {
	src := &traceSource{trace: map[int]traceEvents{1: {core.EventJump}}}
	if got := src.Drain(); len(got) != 0 {
		t.Errorf("tick 0 = %v, want none", got)
	}
	if got := src.Drain(); len(got) != 1 || got[0] != core.EventJump {
		t.Errorf("tick 1 = %v, want [jump]", got)
	}
	if got := src.Drain(); len(got) != 0 {
		t.Errorf("tick 2 = %v, want none", got)
	}
}

func TestVariantFile(t *testing.T) {
	tests := []struct {
		path, variant, want string
	}{
		{"~/.runner/highscore.json", "pixel", "~/.runner/highscore.pixel.json"},
		{"scores", "classic", "scores.classic"},
	}
	for _, tt := range tests {
		if got := variantFile(tt.path, tt.variant); got != tt.want {
			t.Errorf("variantFile(%q, %q) = %q, want %q", tt.path, tt.variant, got, tt.want)
		}
	}
}

// simulated is the part of the simulate output the tests read back.
type simulated struct {
	Seed  int64 `yaml:"seed"`
	Ticks int   `yaml:"ticks"`
	Final struct {
		State string `yaml:"state"`
		Score int    `yaml:"score"`
	} `yaml:"final"`
	SpawnLog []runner.SpawnRecord `yaml:"spawn_log"`
}

func simulateOnce(t *testing.T, args ...string) simulated {
	t.Helper()
	for _, env := range envFlags {
		t.Setenv(env, "")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"simulate"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simulate %v: %v", args, err)
	}

	var sim simulated
	if err := yaml.Unmarshal(out.Bytes(), &sim); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	return sim
}

func TestSimulateIsReproducible(t *testing.T) {
	args := []string{"classic", "--seed", "99", "--ticks", "1500", "--spawns", "--difficulty", "normal"}
	a := simulateOnce(t, args...)
	b := simulateOnce(t, args...)

	if a.Seed != 99 || b.Seed != 99 {
		t.Fatalf("seeds = %d, %d, want 99", a.Seed, b.Seed)
	}
	if a.Ticks != b.Ticks || a.Final.Score != b.Final.Score || a.Final.State != b.Final.State {
		t.Errorf("runs differ: %d/%d/%v vs %d/%d/%v",
			a.Ticks, a.Final.Score, a.Final.State, b.Ticks, b.Final.Score, b.Final.State)
	}
	if len(a.SpawnLog) == 0 || len(a.SpawnLog) != len(b.SpawnLog) {
		t.Fatalf("spawn logs: %d vs %d entries", len(a.SpawnLog), len(b.SpawnLog))
	}
	for i := range a.SpawnLog {
		if a.SpawnLog[i] != b.SpawnLog[i] {
			t.Fatalf("spawn %d: %+v vs %+v", i, a.SpawnLog[i], b.SpawnLog[i])
		}
	}
	if a.Final.State == runner.NotStarted.String() {
		t.Errorf("simulation never started")
	}
}
