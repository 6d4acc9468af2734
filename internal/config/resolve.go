package config

import (
	"fmt"

	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
)

// Overrides are optional replacements for preset values. A nil field keeps
// the value from the layer below.
type Overrides struct {
	Colors      *int
	Guesses     *int
	Holes       *int
	NoDuplicate *bool
}

// Apply writes the set fields over cfg.
func (o Overrides) Apply(cfg *codebreaker.Config) {
	if o.Colors != nil {
		cfg.Colors = *o.Colors
	}
	if o.Guesses != nil {
		cfg.MaxGuesses = *o.Guesses
	}
	if o.Holes != nil {
		cfg.Holes = *o.Holes
	}
	if o.NoDuplicate != nil {
		cfg.AllowDuplicates = !*o.NoDuplicate
	}
}

// Request describes which preset to start from and what to change on top.
type Request struct {
	Preset string    // Preset chosen by flag; empty falls back to env, then the file default
	Env    Env       // Environment overlay
	Flags  Overrides // Explicit flags, applied last
}

// Resolve picks the preset and layers the environment and flag overrides on
// top of it. The result is validated before it is returned.
func Resolve(presets PresetFile, req Request) (Preset, codebreaker.Config, error) {
	id := req.Preset
	if id == "" {
		id = req.Env.Preset
	}
	if id == "" {
		id = presets.DefaultID()
	}

	preset, ok := presets.Find(id)
	if !ok {
		return Preset{}, codebreaker.Config{}, fmt.Errorf("config: unknown preset %q", id)
	}

	cfg := preset.GameConfig()
	req.Env.Overrides().Apply(&cfg)
	req.Flags.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return preset, cfg, err
	}
	return preset, cfg, nil
}

// Customized reports whether cfg differs from the preset it was derived from.
func Customized(p Preset, cfg codebreaker.Config) bool {
	return p.GameConfig() != cfg
}
