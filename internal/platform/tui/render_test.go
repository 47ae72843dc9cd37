package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

func newTestSession(t *testing.T, variant string) *runner.Session {
	t.Helper()
	s, err := runner.NewVariantSession(variant, runner.Options{
		Config: config.DefaultRunnerConfig(),
		Seed:   5,
	})
	if err != nil {
		t.Fatalf("NewVariantSession(%q): %v", variant, err)
	}
	return s
}

func TestViewportCells(t *testing.T) {
	// 800x400 world on 80x20 cells: 10x20 units per cell
	v := newViewport(800, 400, 80, 20)
	tests := []struct {
		name string
		r    core.RectF
		want core.Rect
	}{
		{"player", core.NewRectF(50, 220, 60, 80), core.NewRect(5, 11, 6, 4)},
		{"thin still one cell", core.NewRectF(101, 101, 2, 2), core.NewRect(10, 5, 1, 1)},
		{"clipped right", core.NewRectF(780, 0, 60, 20), core.NewRect(78, 0, 2, 1)},
		{"off screen left", core.NewRectF(-100, 0, 50, 20), core.NewRect(0, 0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.cells(tt.r); got != tt.want {
				t.Errorf("cells(%+v) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestPresenterDrawsStartScreen(t *testing.T) {
	s := newTestSession(t, runner.VariantClassic)
	screen := core.NewScreen(80, 21)
	p := NewScreenPresenter(screen, s.Skin(), "CLASSIC")
	p.Present(s.Snapshot())

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 00000") || !strings.Contains(hud, "HI: 00000") {
		t.Errorf("HUD = %q", hud)
	}

	player := s.Skin().Sprite(skin.PlayerRunning)
	// Player covers columns 5..10 and field rows 11..14 (screen rows 12..15)
	if got := screen.GetCell(7, 13); got.Rune != player.Glyph || got.Color != player.Color {
		t.Errorf("player cell = %q/%v, want %q/%v", got.Rune, got.Color, player.Glyph, player.Color)
	}

	ground := screen.Row(16)
	if strings.ContainsRune(ground, ' ') || !strings.ContainsRune(ground, '_') {
		t.Errorf("ground row = %q", ground)
	}

	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("start message missing")
	}
}

func TestPresenterGameOverOverlay(t *testing.T) {
	screen := core.NewScreen(80, 21)
	p := NewScreenPresenter(screen, skin.MustLoad("shapes"), "CLASSIC")
	p.Present(runner.Snapshot{
		State:       runner.GameOver,
		Score:       321,
		GroundY:     300,
		FieldWidth:  800,
		FieldHeight: 400,
		Player:      runner.PlayerView{X: 50, Y: 300, Sprite: skin.PlayerDead},
	})
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 321") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestPresenterMaskLeavesTransparentCells(t *testing.T) {
	profile := skin.MustLoad("sprites")
	sp := profile.Sprite(skin.Aerial)
	mask := sp.Mask(1)
	if mask == nil {
		t.Fatal("sprites aerial has no mask")
	}

	// One cell per mask cell: 10 world units per column and row
	screen := core.NewScreen(80, 41)
	p := NewScreenPresenter(screen, profile, "")
	v := newViewport(800, 400, 80, 40)
	r := core.NewRectF(200, 100, sp.Width, sp.Height)
	p.fill(v, r, sp, 1)

	for row := 0; row < mask.Rows(); row++ {
		for col := 0; col < mask.Cols(); col++ {
			got := screen.Get(20+col, 10+row+hudRows)
			want := ' '
			if mask.Opaque(col, row) {
				want = sp.Glyph
			}
			if got != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", col, row, got, want)
			}
		}
	}
}

func TestPresenterRedrawAfterResize(t *testing.T) {
	s := newTestSession(t, runner.VariantSprites)
	screen := core.NewScreen(40, 11)
	p := NewScreenPresenter(screen, s.Skin(), "SPRITES")
	p.Present(s.Snapshot())

	screen.Resize(120, 31)
	p.Redraw()
	if hud := screen.Row(0); !strings.Contains(hud, "SPRITES") {
		t.Errorf("HUD after resize = %q", hud)
	}
	if p.Last().Tick != s.Snapshot().Tick {
		t.Error("Last does not return the presented snapshot")
	}
}

func TestPresenterSingleGlyphGround(t *testing.T) {
	profile, err := skin.Parse([]byte(`
name: flat
sprites:
  ground:
    width: 800
    height: 20
    pattern: "="
    color: white
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	screen := core.NewScreen(80, 21)
	p := NewScreenPresenter(screen, profile, "")

	// Ground below the field is drawn on the last field row
	p.Present(runner.Snapshot{GroundY: 900, FieldWidth: 800, FieldHeight: 400, GroundOffset: -35})
	want := strings.Repeat("=", 80)
	if got := screen.Row(20); got != want {
		t.Errorf("ground row = %q, want %q", got, want)
	}
	if got := screen.GetCell(40, 20).Color; got != core.ColorWhite {
		t.Errorf("ground color = %v", got)
	}
}

func TestScreenshotTextTrimsRows(t *testing.T) {
	screen := core.NewScreen(10, 3)
	screen.DrawText(0, 0, "HI")
	screen.DrawText(2, 2, "x")
	if got, want := screenshotText(screen), "HI\n\n  x\n"; got != want {
		t.Errorf("screenshotText = %q, want %q", got, want)
	}
}
