package runner

import (
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Builtin variant ids.
const (
	VariantClassic = "classic"
	VariantSprites = "sprites"
	VariantPixel   = "pixel"
)

func init() {
	registry.Register(registry.Variant{
		ID:          VariantClassic,
		Title:       "Classic Runner",
		Description: "Solid shapes, box collisions",
		Skin:        "shapes",
		Collision:   "box",
	})
	registry.Register(registry.Variant{
		ID:          VariantSprites,
		Title:       "Sprite Runner",
		Description: "Pixel sprites, box collisions",
		Skin:        "sprites",
		Collision:   "box",
	})
	registry.Register(registry.Variant{
		ID:          VariantPixel,
		Title:       "Pixel Perfect Runner",
		Description: "Pixel sprites, mask collisions",
		Skin:        "sprites",
		Collision:   "mask",
	})
}

// NewVariantSession creates a session for a registered variant, filling the
// skin, collision strategy and variant id of opts.
func NewVariantSession(id string, opts Options) (*Session, error) {
	v, err := registry.Get(id)
	if err != nil {
		return nil, err
	}
	profile, strategy, err := v.Resolve()
	if err != nil {
		return nil, err
	}
	opts.Skin = profile
	opts.Collision = strategy
	opts.Variant = v.ID
	return NewSession(opts), nil
}
