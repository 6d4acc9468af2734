package config

import (
	_ "embed"

	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
)

//go:embed defaults/presets.yaml
var defaultPresetsYAML []byte

// DefaultPresets returns the built-in presets used when the embedded YAML
// cannot be parsed.
func DefaultPresets() PresetFile {
	cfg := codebreaker.DefaultConfig()
	return PresetFile{
		Default: "classic",
		Presets: []Preset{
			{
				ID:              "classic",
				Title:           "Classic",
				Colors:          cfg.Colors,
				Guesses:         cfg.MaxGuesses,
				Holes:           cfg.Holes,
				AllowDuplicates: cfg.AllowDuplicates,
			},
		},
	}
}

// DefaultYAML returns the embedded presets file.
func DefaultYAML() []byte {
	return defaultPresetsYAML
}
