package collision

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	tagPlayer   = "player"
	tagObstacle = "obstacle"
	cellSize    = 16
)

// Detector runs the per-tick collision check: a spatial hash narrows the
// obstacles down to those sharing cells with the player, and the strategy
// decides among them.
type Detector struct {
	strategy Strategy
	space    *resolv.Space
	area     core.RectF
	player   *resolv.Object
	objects  []*resolv.Object
}

// NewDetector creates a detector whose broadphase covers a width x height field.
func NewDetector(strategy Strategy, width, height float64) *Detector {
	if strategy == nil {
		strategy = BoxStrategy{}
	}
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	return &Detector{
		strategy: strategy,
		space:    resolv.NewSpace(w, h, cellSize, cellSize),
		area:     core.NewRectF(0, 0, float64(w), float64(h)),
	}
}

// Strategy returns the narrowphase strategy.
func (d *Detector) Strategy() Strategy {
	return d.strategy
}

// FirstHit returns the index of the first obstacle, in slice order, that
// collides with the player.
func (d *Detector) FirstHit(player Body, obstacles []Body) (int, bool) {
	if len(obstacles) == 0 {
		return 0, false
	}

	// The hash only knows cells inside the field
	if !d.inside(player.Bounds) {
		return d.scan(player, obstacles)
	}

	d.reset()
	for i, ob := range obstacles {
		obj := newObject(ob.Bounds, tagObstacle)
		obj.Data = i
		d.space.Add(obj)
		d.objects = append(d.objects, obj)
	}
	d.player = newObject(player.Bounds, tagPlayer)
	d.space.Add(d.player)

	check := d.player.Check(0, 0, tagObstacle)
	if check == nil {
		return 0, false
	}

	candidates := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok {
			candidates = append(candidates, i)
		}
	}
	sort.Ints(candidates)
	for _, i := range candidates {
		if d.strategy.Collides(player, obstacles[i]) {
			return i, true
		}
	}
	return 0, false
}

func (d *Detector) scan(player Body, obstacles []Body) (int, bool) {
	for i, ob := range obstacles {
		if d.strategy.Collides(player, ob) {
			return i, true
		}
	}
	return 0, false
}

func (d *Detector) inside(r core.RectF) bool {
	return r.X >= d.area.X && r.Y >= d.area.Y && r.Right() <= d.area.Right() && r.Bottom() <= d.area.Bottom()
}

func (d *Detector) reset() {
	if d.player != nil {
		d.space.Remove(d.player)
		d.player = nil
	}
	if len(d.objects) > 0 {
		d.space.Remove(d.objects...)
		d.objects = d.objects[:0]
	}
}

// newObject inflates the box by one unit on each side so fractional edges
// never fall outside the cells the hash assigns.
func newObject(r core.RectF, tag string) *resolv.Object {
	obj := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W+2, r.H+2))
	return obj
}
