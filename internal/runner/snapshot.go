package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// PlayerView is the read-only view of the player body.
type PlayerView struct {
	X         float64     `yaml:"x"`
	Y         float64     `yaml:"y"`
	VelocityY float64     `yaml:"velocity_y"`
	State     PlayerState `yaml:"state"`
	Frame     int         `yaml:"frame"`
	Sprite    skin.Key    `yaml:"sprite"`
	Hitbox    core.RectF  `yaml:"-"`
}

// ObstacleView is the read-only view of an obstacle.
type ObstacleView struct {
	Kind   ObstacleKind `yaml:"kind"`
	X      float64      `yaml:"x"`
	Y      float64      `yaml:"y"`
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Frame  int          `yaml:"frame"`
}

// CloudView is the read-only view of a cloud.
type CloudView struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Snapshot is everything a presentation needs to draw one frame. It shares
// no memory with the session.
type Snapshot struct {
	State        State          `yaml:"state"`
	Variant      string         `yaml:"variant"`
	Tick         int            `yaml:"tick"`
	Score        int            `yaml:"score"`
	HighScore    int            `yaml:"high_score"`
	Speed        float64        `yaml:"speed"`
	GroundY      float64        `yaml:"ground_y"`
	FieldWidth   float64        `yaml:"field_width"`
	FieldHeight  float64        `yaml:"field_height"`
	GroundOffset float64        `yaml:"ground_offset"`
	Player       PlayerView     `yaml:"player"`
	Obstacles    []ObstacleView `yaml:"obstacles"`
	Clouds       []CloudView    `yaml:"clouds"`
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		State:        s.state,
		Variant:      s.variant,
		Tick:         s.ticks,
		Score:        s.score,
		HighScore:    s.highScore,
		Speed:        s.speed.Speed(),
		GroundY:      s.cfg.Field.GroundY,
		FieldWidth:   s.cfg.Field.Width,
		FieldHeight:  s.cfg.Field.Height,
		GroundOffset: s.ground.Offset,
		Player: PlayerView{
			X:         p.X,
			Y:         p.Y,
			VelocityY: p.VelocityY,
			State:     p.State,
			Frame:     p.AnimFrame(),
			Sprite:    p.SpriteKey(),
			Hitbox:    s.playerBody().Bounds,
		},
		Obstacles: make([]ObstacleView, len(s.obstacles)),
		Clouds:    make([]CloudView, len(s.clouds)),
	}
	for i, o := range s.obstacles {
		snap.Obstacles[i] = ObstacleView{Kind: o.Kind, X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Frame: o.Frame}
	}
	for i, c := range s.clouds {
		snap.Clouds[i] = CloudView{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
	}
	return snap
}
