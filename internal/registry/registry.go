// Package registry holds the game presets available to the CLI and the menu.
// Presets are registered once at startup, from the loaded presets file,
// and looked up by ID afterwards.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
)

// Preset is a named game configuration.
type Preset struct {
	ID     string
	Title  string
	Config codebreaker.Config
}

// Label returns a one-line description such as "Classic (6 colors, 4 holes, 8 guesses)".
func (p Preset) Label() string {
	title := p.Title
	if title == "" {
		title = p.ID
	}
	dup := ""
	if !p.Config.AllowDuplicates {
		dup = ", no duplicates"
	}
	return fmt.Sprintf("%s (%d colors, %d holes, %d guesses%s)",
		title, p.Config.Colors, p.Config.Holes, p.Config.MaxGuesses, dup)
}

var (
	presets = make(map[string]Preset)
	order   = make(map[string]int)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}

	order[p.ID] = len(presets)
	presets[p.ID] = p
}

// List returns all registered presets in registration order.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return order[result[i].ID] < order[result[j].ID]
	})

	return result
}

// Get returns the preset with the given ID.
// Returns an error if the preset is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// reset empties the registry.
func reset() {
	mu.Lock()
	defer mu.Unlock()

	presets = make(map[string]Preset)
	order = make(map[string]int)
}
