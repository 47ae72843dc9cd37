package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Cloud is background decoration. It drifts at its own speed and never collides.
type Cloud struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64
}

// Update drifts the cloud left.
func (c *Cloud) Update() {
	c.X -= c.Speed
}

// Gone reports whether the cloud has fully left the field.
func (c *Cloud) Gone() bool {
	return c.X < -c.Width
}

// Rect returns the cloud rectangle.
func (c *Cloud) Rect() core.RectF {
	return core.NewRectF(c.X, c.Y, c.Width, c.Height)
}
