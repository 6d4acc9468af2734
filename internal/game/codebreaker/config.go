// Package codebreaker implements the code-breaking game: a hidden color
// sequence, guesses scored as bulls and cows, and the state machine that
// decides when a round is won or lost.
package codebreaker

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/codebreaker/internal/core"
)

// Configuration errors. Validate wraps them, so use errors.Is.
var (
	ErrNonPositive     = errors.New("must be positive")
	ErrTooManyColors   = errors.New("exceeds the color palette")
	ErrNotEnoughColors = errors.New("not enough colors for a solution without duplicates")
	ErrInvalidSolution = errors.New("invalid solution")
)

// PaletteSize is the largest color count a game can use.
const PaletteSize = core.PaletteSize

// Config describes a single round of play.
type Config struct {
	Colors          int  // Distinct colors in play
	MaxGuesses      int  // Guesses allowed before the round is lost
	Holes           int  // Holes per row
	AllowDuplicates bool // Whether the solution may repeat a color
}

// DefaultConfig returns the classic 6 colors, 4 holes, 8 guesses setup.
func DefaultConfig() Config {
	return Config{
		Colors:          6,
		MaxGuesses:      8,
		Holes:           4,
		AllowDuplicates: true,
	}
}

// Validate checks the invariants that must hold before a solution is generated.
func (c Config) Validate() error {
	if c.Colors <= 0 {
		return fmt.Errorf("codebreaker: colors %w", ErrNonPositive)
	}
	if c.MaxGuesses <= 0 {
		return fmt.Errorf("codebreaker: guesses %w", ErrNonPositive)
	}
	if c.Holes <= 0 {
		return fmt.Errorf("codebreaker: holes %w", ErrNonPositive)
	}
	if c.Colors > PaletteSize {
		return fmt.Errorf("codebreaker: colors must be <= %d: %w", PaletteSize, ErrTooManyColors)
	}
	if !c.AllowDuplicates && c.Colors < c.Holes {
		return fmt.Errorf("codebreaker: colors must be >= holes when duplicates are forbidden: %w", ErrNotEnoughColors)
	}
	return nil
}
