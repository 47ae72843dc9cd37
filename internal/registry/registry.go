// Package registry provides a global registry of runner variants.
// Variants register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies. A variant is a reskin of
// the same simulation: it names a skin and a collision strategy.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/collision"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// Variant describes one reskin of the runner.
type Variant struct {
	ID          string // used for CLI commands and score storage
	Title       string
	Description string
	Skin        string // builtin skin name or file path
	Collision   string // collision strategy name
}

// Resolve loads the variant's skin and collision strategy.
func (v Variant) Resolve() (*skin.Profile, collision.Strategy, error) {
	profile, err := skin.Load(v.Skin)
	if err != nil {
		return nil, nil, fmt.Errorf("registry: variant %q: %w", v.ID, err)
	}
	strategy, err := collision.New(v.Collision)
	if err != nil {
		return nil, nil, fmt.Errorf("registry: variant %q: %w", v.ID, err)
	}
	return profile, strategy, nil
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without id")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a variant by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
