package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// PlayerState is the pose of the player body.
type PlayerState int

const (
	Running PlayerState = iota
	Jumping
	Ducking
	Dead
)

var playerStateNames = [...]string{"running", "jumping", "ducking", "dead"}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(playerStateNames) {
		return "unknown"
	}
	return playerStateNames[s]
}

// MarshalYAML writes the state by name.
func (s PlayerState) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Player is the controlled character. X is fixed; Y is the feet position,
// which never goes below the ground line.
type Player struct {
	X         float64
	Y         float64
	VelocityY float64
	State     PlayerState
	Frame     int // 0 or 1

	animCounter int
	groundY     float64
	gravity     float64
	impulse     float64
	animEvery   int
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.RunnerConfig) *Player {
	return &Player{
		X:         cfg.Player.X,
		Y:         cfg.Field.GroundY,
		State:     Running,
		groundY:   cfg.Field.GroundY,
		gravity:   cfg.Physics.Gravity,
		impulse:   cfg.Physics.JumpImpulse,
		animEvery: cfg.Player.AnimEvery,
	}
}

// Update integrates one tick of vertical motion and advances the run/duck
// animation. A dead player is frozen.
func (p *Player) Update() {
	if p.State == Dead {
		return
	}

	p.VelocityY += p.gravity
	p.Y += p.VelocityY
	if p.Y >= p.groundY {
		p.Y = p.groundY
		p.VelocityY = 0
		if p.State == Jumping {
			p.State = Running
		}
	}

	if p.State == Running || p.State == Ducking {
		p.animCounter++
		if p.animCounter >= p.animEvery {
			p.animCounter = 0
			p.Frame ^= 1
		}
	}
}

// Jump starts a jump. Ignored while already jumping or dead.
func (p *Player) Jump() {
	if p.State == Jumping || p.State == Dead {
		return
	}
	p.VelocityY = p.impulse
	p.State = Jumping
}

// SetDucking enters or leaves the ducking pose. Ignored while jumping or dead.
func (p *Player) SetDucking(on bool) {
	if p.State == Jumping || p.State == Dead {
		return
	}
	if on {
		p.State = Ducking
	} else {
		p.State = Running
	}
}

// Kill makes the player dead until the next reset.
func (p *Player) Kill() {
	p.State = Dead
	p.VelocityY = 0
}

// OnGround reports whether the feet rest on the ground line.
func (p *Player) OnGround() bool {
	return p.Y >= p.groundY
}

// SpriteKey returns the sprite that draws the current state.
func (p *Player) SpriteKey() skin.Key {
	switch p.State {
	case Jumping:
		return skin.PlayerJumping
	case Ducking:
		return skin.PlayerDucking
	case Dead:
		return skin.PlayerDead
	default:
		return skin.PlayerRunning
	}
}

// AnimFrame returns the animation frame used for drawing and masks.
// Jumping and dead poses are static.
func (p *Player) AnimFrame() int {
	if p.State == Running || p.State == Ducking {
		return p.Frame
	}
	return 0
}
