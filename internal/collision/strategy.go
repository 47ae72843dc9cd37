// Package collision decides whether the player body overlaps an obstacle.
// Two strategies are available: axis-aligned boxes and per-cell opacity masks.
package collision

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// Body is the collision view of an entity.
type Body struct {
	Bounds core.RectF // hitbox
	Mask   *skin.Mask // optional opacity mask
	Frame  core.RectF // rectangle the mask is stretched over
}

// Strategy tests two bodies for overlap. Implementations are symmetric:
// Collides(a, b) == Collides(b, a).
type Strategy interface {
	Name() string
	Collides(a, b Body) bool
}

// Strategy names.
const (
	Box  = "box"
	Mask = "mask"
)

// New returns the strategy with the given name.
func New(name string) (Strategy, error) {
	switch name {
	case Box, "":
		return BoxStrategy{}, nil
	case Mask:
		return MaskStrategy{}, nil
	default:
		return nil, fmt.Errorf("collision: unknown strategy %q", name)
	}
}

// Names returns the available strategy names, sorted.
func Names() []string {
	names := []string{Box, Mask}
	sort.Strings(names)
	return names
}

// BoxStrategy reports overlap of the hitbox rectangles.
type BoxStrategy struct{}

func (BoxStrategy) Name() string { return Box }

func (BoxStrategy) Collides(a, b Body) bool {
	return a.Bounds.Intersects(b.Bounds)
}

// MaskStrategy reports overlap of opaque mask cells inside the intersection
// of the hitboxes. A body without a mask is treated as fully opaque.
type MaskStrategy struct{}

func (MaskStrategy) Name() string { return Mask }

func (MaskStrategy) Collides(a, b Body) bool {
	area, ok := a.Bounds.Intersection(b.Bounds)
	if !ok {
		return false
	}
	if a.Mask == nil && b.Mask == nil {
		return true
	}

	// Sample the intersection on a grid of at most one world unit. The grid
	// depends only on the intersection, so the test is order independent.
	nx := int(math.Ceil(area.W))
	ny := int(math.Ceil(area.H))
	sx := area.W / float64(nx)
	sy := area.H / float64(ny)
	for j := 0; j < ny; j++ {
		y := area.Y + (float64(j)+0.5)*sy
		for i := 0; i < nx; i++ {
			x := area.X + (float64(i)+0.5)*sx
			if opaqueAt(a, x, y) && opaqueAt(b, x, y) {
				return true
			}
		}
	}
	return false
}

func opaqueAt(body Body, x, y float64) bool {
	if body.Mask == nil {
		return true
	}
	return body.Mask.OpaqueAt(x-body.Frame.X, y-body.Frame.Y, body.Frame.W, body.Frame.H)
}
