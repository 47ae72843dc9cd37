// Package skin supplies the visual profile of every entity kind: the bounds a
// sprite is drawn in, an optional opacity mask per animation frame, and the
// glyph and color the terminal presentation uses. The simulation only reads
// bounds and masks; it never depends on how a sprite is drawn.
package skin

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Key names one sprite of a profile.
type Key string

const (
	PlayerRunning Key = "player_running"
	PlayerDucking Key = "player_ducking"
	PlayerJumping Key = "player_jumping"
	PlayerDead    Key = "player_dead"
	GroundSmall   Key = "ground_small"
	GroundLarge   Key = "ground_large"
	GroundMulti   Key = "ground_multi"
	Aerial        Key = "aerial"
	Cloud         Key = "cloud"
	Ground        Key = "ground"
)

// Keys lists every sprite a complete profile provides.
var Keys = []Key{
	PlayerRunning, PlayerDucking, PlayerJumping, PlayerDead,
	GroundSmall, GroundLarge, GroundMulti, Aerial, Cloud, Ground,
}

// PlaceholderSize is the side of the square substituted for a missing sprite.
const PlaceholderSize = 40

// Sprite is the visual profile of one entity kind or player state.
type Sprite struct {
	Width  float64
	Height float64
	Frames []*Mask // optional, one per animation frame
	Glyph  rune
	Color  core.Color
	// Bob shortens the drawn height of odd animation frames (visual only).
	Bob         float64
	Pattern     string // ground strip tiling pattern
	Placeholder bool
}

// Mask returns the mask for an animation frame, or nil if the sprite has none.
func (s Sprite) Mask(frame int) *Mask {
	if len(s.Frames) == 0 {
		return nil
	}
	if frame < 0 {
		frame = 0
	}
	return s.Frames[frame%len(s.Frames)]
}

// DrawRect returns the rectangle the sprite is drawn in when its left edge is
// at x and its bottom edge at bottom.
func (s Sprite) DrawRect(x, bottom float64) core.RectF {
	return core.NewRectF(x, bottom-s.Height, s.Width, s.Height)
}

// Hitbox returns the collision rectangle for the first animation frame.
func (s Sprite) Hitbox(x, bottom float64) core.RectF {
	return s.FrameHitbox(0, x, bottom)
}

// FrameHitbox returns the collision rectangle for a frame. Without a mask the
// hitbox is the draw rectangle; with one it is the tight bounding box of the
// opaque cells, scaled to world units and offset from the draw rectangle.
func (s Sprite) FrameHitbox(frame int, x, bottom float64) core.RectF {
	draw := s.DrawRect(x, bottom)
	m := s.Mask(frame)
	if m == nil {
		return draw
	}
	b := m.Bounds()
	if b.W == 0 || b.H == 0 {
		return core.NewRectF(draw.X, draw.Y, 0, 0)
	}
	cw := s.Width / float64(m.Cols())
	ch := s.Height / float64(m.Rows())
	return core.NewRectF(
		draw.X+float64(b.X)*cw,
		draw.Y+float64(b.Y)*ch,
		float64(b.W)*cw,
		float64(b.H)*ch,
	)
}

// Profile is a named set of sprites.
type Profile struct {
	Name        string
	Description string
	sprites     map[Key]Sprite
}

// Sprite returns the sprite for key. A missing sprite is replaced by a fixed
// size placeholder so geometry stays well defined.
func (p *Profile) Sprite(key Key) Sprite {
	if s, ok := p.sprites[key]; ok {
		return s
	}
	return placeholder()
}

// Has reports whether the profile defines key.
func (p *Profile) Has(key Key) bool {
	_, ok := p.sprites[key]
	return ok
}

// Missing returns the keys the profile does not define, in Keys order.
func (p *Profile) Missing() []Key {
	var out []Key
	for _, k := range Keys {
		if !p.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// HasMasks reports whether any sprite carries an opacity mask.
func (p *Profile) HasMasks() bool {
	for _, s := range p.sprites {
		if len(s.Frames) > 0 {
			return true
		}
	}
	return false
}

func placeholder() Sprite {
	return Sprite{
		Width:       PlaceholderSize,
		Height:      PlaceholderSize,
		Glyph:       '?',
		Color:       core.ColorMagenta,
		Placeholder: true,
	}
}

// spriteFile is the YAML form of a sprite.
type spriteFile struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Glyph   string   `yaml:"glyph"`
	Color   string   `yaml:"color"`
	Bob     float64  `yaml:"bob"`
	Pattern string   `yaml:"pattern"`
	Frames  []string `yaml:"frames"`
}

type profileFile struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Sprites     map[string]spriteFile `yaml:"sprites"`
}

// Parse decodes a profile from YAML.
func Parse(data []byte) (*Profile, error) {
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("skin: failed to parse profile: %w", err)
	}
	if pf.Name == "" {
		return nil, fmt.Errorf("skin: profile has no name")
	}

	p := &Profile{Name: pf.Name, Description: pf.Description, sprites: make(map[Key]Sprite, len(pf.Sprites))}
	for name, sf := range pf.Sprites {
		if sf.Width <= 0 || sf.Height <= 0 {
			return nil, fmt.Errorf("skin: %s: sprite %q needs a positive size", pf.Name, name)
		}
		s := Sprite{
			Width:   sf.Width,
			Height:  sf.Height,
			Glyph:   '#',
			Color:   core.ParseColor(sf.Color),
			Bob:     sf.Bob,
			Pattern: sf.Pattern,
		}
		if r := []rune(sf.Glyph); len(r) > 0 {
			s.Glyph = r[0]
		}
		for i, block := range sf.Frames {
			m, err := parseMaskBlock(block)
			if err != nil {
				return nil, fmt.Errorf("skin: %s: sprite %q frame %d: %w", pf.Name, name, i, err)
			}
			s.Frames = append(s.Frames, m)
		}
		p.sprites[Key(name)] = s
	}
	return p, nil
}

// Builtins returns the names of the embedded profiles, sorted.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load returns a builtin profile by name, or reads a profile from a file path.
func Load(nameOrPath string) (*Profile, error) {
	if data, err := builtinFS.ReadFile(path.Join("builtin", nameOrPath+".yaml")); err == nil {
		return Parse(data)
	}

	data, err := os.ReadFile(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("skin: cannot load %q: %w", nameOrPath, err)
	}
	return Parse(data)
}

// MustLoad loads a builtin profile and panics if it is missing or broken.
func MustLoad(name string) *Profile {
	p, err := Load(name)
	if err != nil {
		panic(err)
	}
	return p
}
