// Package skin provides a global registry of peanut skins.
// Skins register themselves in init() functions, allowing the platform
// and CLI to discover them without hardcoded dependencies.
package skin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/crouton-games/peanut-panic/internal/core"
)

// Skin describes how the peanut is drawn: a glyph and a color.
// Skins are cosmetic only and never affect the simulation.
type Skin struct {
	ID    string
	Title string
	Glyph rune
	Color core.Color
}

// DefaultID is the skin used when no preference is stored.
const DefaultID = "classic"

var (
	skins = make(map[string]Skin)
	mu    sync.RWMutex
)

// Register adds a skin to the registry.
// Typically called from an init() function.
// Panics if a skin with the same ID is already registered.
func Register(s Skin) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := skins[s.ID]; exists {
		panic(fmt.Sprintf("skin: %q already registered", s.ID))
	}

	skins[s.ID] = s
}

// Lookup returns the skin with the given ID.
func Lookup(id string) (Skin, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := skins[id]
	return s, ok
}

// Parse resolves an ID to a registered skin. Unknown or empty IDs fall
// back to the default skin, so callers never have to handle a failure.
func Parse(id string) Skin {
	if s, ok := Lookup(id); ok {
		return s
	}
	return Default()
}

// Default returns the default skin.
func Default() Skin {
	s, ok := Lookup(DefaultID)
	if !ok {
		panic(fmt.Sprintf("skin: default %q not registered", DefaultID))
	}
	return s
}

// List returns all registered skins, sorted by ID.
func List() []Skin {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Skin, 0, len(skins))
	for _, s := range skins {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a skin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := skins[id]
	return ok
}
