package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// ObstacleKind identifies an obstacle variant.
type ObstacleKind int

const (
	GroundSmall ObstacleKind = iota
	GroundLarge
	GroundMulti
	Aerial
)

var obstacleKindNames = [...]string{"ground_small", "ground_large", "ground_multi", "aerial"}

func (k ObstacleKind) String() string {
	if k < 0 || int(k) >= len(obstacleKindNames) {
		return "unknown"
	}
	return obstacleKindNames[k]
}

// MarshalYAML writes the kind by name.
func (k ObstacleKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// groundKinds are chosen uniformly when no aerial obstacle spawns.
var groundKinds = [...]ObstacleKind{GroundSmall, GroundLarge, GroundMulti}

// SpriteKey returns the skin sprite for the kind.
func (k ObstacleKind) SpriteKey() skin.Key {
	switch k {
	case GroundLarge:
		return skin.GroundLarge
	case GroundMulti:
		return skin.GroundMulti
	case Aerial:
		return skin.Aerial
	default:
		return skin.GroundSmall
	}
}

// Obstacle is a hazard moving left. X, Y is the top-left corner of its draw rectangle.
type Obstacle struct {
	Kind   ObstacleKind
	X      float64
	Y      float64
	Width  float64
	Height float64
	Frame  int

	animCounter int
}

// Bottom returns the y of the bottom edge.
func (o *Obstacle) Bottom() float64 {
	return o.Y + o.Height
}

// Move shifts the obstacle left and flaps aerial wings every animEvery ticks.
func (o *Obstacle) Move(dx float64, animEvery int) {
	o.X -= dx
	if o.Kind != Aerial {
		return
	}
	o.animCounter++
	if o.animCounter >= animEvery {
		o.animCounter = 0
		o.Frame ^= 1
	}
}

// DrawRect returns the rectangle the obstacle is drawn in.
func (o *Obstacle) DrawRect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}
