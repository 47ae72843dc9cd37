package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/highscore"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{ID: m.tickID})
}

func TestModelStartsOnSpace(t *testing.T) {
	m := NewModel(newTestSession(t, runner.VariantClassic), 60, 80, 24)
	m, _ = send(t, m, keySpace)
	if m.Session().State() != runner.NotStarted {
		t.Fatal("event applied before the tick")
	}
	m, cmd := tick(t, m)
	if m.Session().State() != runner.Playing {
		t.Fatalf("state = %v, want playing", m.Session().State())
	}
	if cmd == nil {
		t.Fatal("tick chain stopped")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	m := NewModel(newTestSession(t, runner.VariantClassic), 60, 80, 24)
	m, _ = send(t, m, keySpace)
	m, cmd := send(t, m, TickMsg{ID: m.tickID + 1})
	if cmd != nil || m.Session().State() != runner.NotStarted {
		t.Error("tick of another chain was processed")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTestSession(t, runner.VariantClassic), 60, 80, 24)
	m, _ = send(t, m, runeKey('q'))
	m, _ = tick(t, m)
	if !m.IsQuitting() {
		t.Fatal("model not quitting after q")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelBackOnlyWhenNotPlaying(t *testing.T) {
	m := NewModel(newTestSession(t, runner.VariantClassic), 60, 80, 24)
	m, _ = send(t, m, keySpace)
	m, _ = tick(t, m)
	m, _ = send(t, m, keyEsc)
	if m.IsGoingBack() {
		t.Fatal("back accepted while playing")
	}

	fresh := NewModel(newTestSession(t, runner.VariantClassic), 60, 80, 24)
	fresh, _ = send(t, fresh, keyEsc)
	if !fresh.IsGoingBack() {
		t.Fatal("back ignored on the start screen")
	}
}

func TestModelDuckHold(t *testing.T) {
	m := NewModel(newTestSession(t, runner.VariantPixel), 10, 80, 24) // hold timeout 6 ticks
	m, _ = send(t, m, keySpace)
	m, _ = tick(t, m)

	m, _ = send(t, m, keyDown)
	m, _ = tick(t, m)
	if got := m.Session().Player().State; got != runner.Ducking {
		t.Fatalf("player = %v, want ducking", got)
	}

	// Key repeat keeps the duck
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, keyDown)
		m, _ = tick(t, m)
	}
	if got := m.Session().Player().State; got != runner.Ducking {
		t.Fatalf("player = %v during key repeat, want ducking", got)
	}

	for i := 0; i < 7; i++ {
		m, _ = tick(t, m)
	}
	// No obstacle reaches the player this early
	if got := m.Session().Player().State; got != runner.Running {
		t.Fatalf("player = %v after the key stopped repeating, want running", got)
	}
}

func TestLauncherHighScoreStores(t *testing.T) {
	l := &Launcher{}
	if _, ok := l.highScores("classic").(*highscore.Memory); !ok {
		t.Error("launcher without stores should keep the high score in memory")
	}

	want := &highscore.Memory{Score: 40}
	l.HighScores = func(string) (highscore.Store, error) { return want, nil }
	s, err := l.NewSession(runner.VariantSprites)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.HighScore() != 40 || s.Variant() != runner.VariantSprites {
		t.Errorf("session high=%d variant=%q", s.HighScore(), s.Variant())
	}

	if _, err := l.NewSession("nope"); err == nil {
		t.Error("unknown variant accepted")
	}
}
