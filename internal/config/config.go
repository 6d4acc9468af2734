// Package config provides YAML-based preset loading and the environment
// overlay for codebreaker games.
package config

import (
	"fmt"

	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
)

// PresetFile is the layout of a presets YAML file.
type PresetFile struct {
	Default string   `yaml:"default"`
	Presets []Preset `yaml:"presets"`
}

// Preset is a named game configuration.
type Preset struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	Colors          int    `yaml:"colors"`
	Guesses         int    `yaml:"guesses"`
	Holes           int    `yaml:"holes"`
	AllowDuplicates bool   `yaml:"allow_duplicates"`
}

// GameConfig converts the preset into a game configuration.
func (p Preset) GameConfig() codebreaker.Config {
	return codebreaker.Config{
		Colors:          p.Colors,
		MaxGuesses:      p.Guesses,
		Holes:           p.Holes,
		AllowDuplicates: p.AllowDuplicates,
	}
}

// Find returns the preset with the given ID.
func (f PresetFile) Find(id string) (Preset, bool) {
	for _, p := range f.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Validate checks that preset IDs are unique, every preset is a playable
// game, and the default preset exists.
func (f PresetFile) Validate() error {
	if len(f.Presets) == 0 {
		return fmt.Errorf("config: no presets defined")
	}

	seen := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		if p.ID == "" {
			return fmt.Errorf("config: preset without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true

		if err := p.GameConfig().Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.ID, err)
		}
	}

	if f.Default != "" && !seen[f.Default] {
		return fmt.Errorf("config: default preset %q is not defined", f.Default)
	}
	return nil
}

// DefaultID returns the preset to use when none is requested.
func (f PresetFile) DefaultID() string {
	if f.Default != "" {
		return f.Default
	}
	if len(f.Presets) > 0 {
		return f.Presets[0].ID
	}
	return ""
}
