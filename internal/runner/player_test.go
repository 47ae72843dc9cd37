package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultRunnerConfig())
}

func TestGravityConvergence(t *testing.T) {
	for _, y := range []float64{300, 250, 100, 0} {
		for v := -30.0; v <= 30; v += 2.5 {
			p := newTestPlayer()
			p.Y = y
			p.VelocityY = v
			if y < 300 || v != 0 {
				p.State = Jumping
			}

			landed := -1
			for i := 0; i < 200; i++ {
				p.Update()
				if p.Y > 300 {
					t.Fatalf("y=%v v=%v: sank below ground to %v", y, v, p.Y)
				}
				if landed < 0 && p.Y == 300 && p.VelocityY == 0 {
					landed = i
				}
				if landed >= 0 && (p.Y != 300 || p.VelocityY != 0) {
					t.Fatalf("y=%v v=%v: left the ground at tick %d without input", y, v, i)
				}
			}
			if landed < 0 {
				t.Errorf("y=%v v=%v: never landed", y, v)
			}
			if p.State != Running {
				t.Errorf("y=%v v=%v: state after landing = %v", y, v, p.State)
			}
		}
	}
}

func TestJumpArc(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	if p.State != Jumping || p.VelocityY != -18 {
		t.Fatalf("after Jump(): state=%v vy=%v", p.State, p.VelocityY)
	}

	prev := p.Y
	// Ascent: y strictly decreases while velocity is negative
	for i := 1; i <= 17; i++ {
		p.Update()
		if p.Y >= prev {
			t.Fatalf("tick %d: y=%v did not decrease from %v", i, p.Y, prev)
		}
		prev = p.Y
	}
	apex := p.Y
	if apex != 300-153 {
		t.Errorf("apex y = %v, expected 147", apex)
	}

	// Tick 18 is the apex plateau: with gravity 1 and impulse -18 the
	// velocity is exactly 0 here, so y repeats once. The arc therefore has
	// 17 strictly ascending ticks, not 18.
	p.Update()
	if p.VelocityY != 0 || p.Y != apex {
		t.Fatalf("apex tick: y=%v vy=%v", p.Y, p.VelocityY)
	}
	prev = p.Y

	// Descent: strictly increasing back to the ground
	for i := 19; i <= 35; i++ {
		p.Update()
		if p.Y <= prev {
			t.Fatalf("tick %d: y=%v did not increase from %v", i, p.Y, prev)
		}
		prev = p.Y
		if i < 35 && p.State != Jumping {
			t.Fatalf("tick %d: landed early at y=%v", i, p.Y)
		}
	}
	if p.Y != 300 || p.VelocityY != 0 || p.State != Running {
		t.Errorf("after landing: y=%v vy=%v state=%v", p.Y, p.VelocityY, p.State)
	}
}

func TestJumpGuard(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	for i := 0; i < 5; i++ {
		p.Update()
	}
	vy, state := p.VelocityY, p.State
	p.Jump()
	if p.VelocityY != vy || p.State != state {
		t.Errorf("Jump() while jumping changed vy %v->%v state %v->%v", vy, p.VelocityY, state, p.State)
	}

	dead := newTestPlayer()
	dead.Kill()
	dead.Jump()
	if dead.VelocityY != 0 || dead.State != Dead {
		t.Errorf("Jump() while dead changed vy=%v state=%v", dead.VelocityY, dead.State)
	}
	y := dead.Y
	dead.Update()
	if dead.Y != y {
		t.Error("dead player should not move")
	}
}

func TestDuckGuard(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.SetDucking(true)
	if p.State != Jumping {
		t.Errorf("SetDucking(true) while jumping: state=%v", p.State)
	}

	p = newTestPlayer()
	p.Kill()
	p.SetDucking(true)
	if p.State != Dead {
		t.Errorf("SetDucking(true) while dead: state=%v", p.State)
	}
	p.SetDucking(false)
	if p.State != Dead {
		t.Errorf("SetDucking(false) while dead: state=%v", p.State)
	}
}

func TestDuckAndJumpFromDuck(t *testing.T) {
	p := newTestPlayer()
	p.SetDucking(true)
	if p.State != Ducking || p.SpriteKey() != skin.PlayerDucking {
		t.Fatalf("state=%v sprite=%v", p.State, p.SpriteKey())
	}
	p.SetDucking(false)
	if p.State != Running {
		t.Fatalf("release: state=%v", p.State)
	}

	p.SetDucking(true)
	p.Jump()
	if p.State != Jumping {
		t.Errorf("jump from duck: state=%v", p.State)
	}
}

func TestPlayerAnimation(t *testing.T) {
	p := newTestPlayer()
	for i := 1; i <= 30; i++ {
		p.Update()
		want := (i / 10) % 2
		if p.AnimFrame() != want {
			t.Fatalf("tick %d: frame=%d expected %d", i, p.AnimFrame(), want)
		}
	}

	// Jumping shows a static pose and does not advance the animation
	frame := p.Frame
	p.Jump()
	for i := 0; i < 12; i++ {
		p.Update()
	}
	if p.AnimFrame() != 0 || p.Frame != frame {
		t.Errorf("animation advanced while jumping: frame=%d", p.Frame)
	}
}
