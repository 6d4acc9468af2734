package codebreaker

import (
	"fmt"
	"math/rand"
)

// Status is the state of a round.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Game holds the state of one round: the hidden solution, every submitted
// guess with its hint, and the guess being entered.
//
// A Game is not safe for concurrent use. Commands must be applied by a single
// owner, one at a time.
type Game struct {
	cfg      Config
	solution Sequence
	guesses  []Sequence
	hints    []Hint
	current  Sequence
}

// New validates the config and creates a game with a solution drawn from rng.
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewWithSolution(cfg, GenerateSolution(rng, cfg.Colors, cfg.Holes, cfg.AllowDuplicates))
}

// NewWithSolution creates a game with a known solution.
// The solution must fit the config, including the duplicate policy.
func NewWithSolution(cfg Config, solution Sequence) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(solution) != cfg.Holes || !solution.Valid(cfg.Colors) {
		return nil, fmt.Errorf("codebreaker: solution %v does not fit %d holes and %d colors: %w",
			solution, cfg.Holes, cfg.Colors, ErrInvalidSolution)
	}
	if !cfg.AllowDuplicates && hasDuplicate(solution) {
		return nil, fmt.Errorf("codebreaker: solution %v repeats a color: %w", solution, ErrInvalidSolution)
	}
	return newGame(cfg, solution.Clone()), nil
}

func newGame(cfg Config, solution Sequence) *Game {
	return &Game{
		cfg:      cfg,
		solution: solution,
		current:  make(Sequence, 0, cfg.Holes),
	}
}

func hasDuplicate(s Sequence) bool {
	seen := make(map[int]bool, len(s))
	for _, c := range s {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// Submitted returns the number of guesses submitted so far.
func (g *Game) Submitted() int {
	return len(g.guesses)
}

// Status derives the round state from the last hint and the guess count.
func (g *Game) Status() Status {
	if n := len(g.hints); n > 0 && g.hints[n-1].Solved(g.cfg.Holes) {
		return StatusWon
	}
	if len(g.guesses) >= g.cfg.MaxGuesses {
		return StatusLost
	}
	return StatusPlaying
}

// AppendColor adds a color to the guess being entered.
// It does nothing if the round is over, the guess is full, or the color is
// out of range. Returns whether the guess changed.
func (g *Game) AppendColor(color int) bool {
	if g.Status() != StatusPlaying {
		return false
	}
	if len(g.current) >= g.cfg.Holes || color < 0 || color >= g.cfg.Colors {
		return false
	}
	g.current = append(g.current, color)
	return true
}

// RemoveLastColor drops the last color of the guess being entered.
// Returns whether the guess changed.
func (g *Game) RemoveLastColor() bool {
	if g.Status() != StatusPlaying || len(g.current) == 0 {
		return false
	}
	g.current = g.current[:len(g.current)-1]
	return true
}

// SubmitGuess scores the guess being entered and records it.
// Only a complete guess is accepted while the round is in play.
// Returns whether a guess was submitted.
func (g *Game) SubmitGuess() bool {
	if g.Status() != StatusPlaying || len(g.current) != g.cfg.Holes {
		return false
	}

	guess := g.current
	hint := Score(guess, g.solution, g.cfg.Colors)

	g.guesses = append(g.guesses, guess)
	g.hints = append(g.hints, hint)
	g.current = make(Sequence, 0, g.cfg.Holes)

	return true
}

// Apply dispatches a command and returns whether the state changed.
// Quit and unknown commands are ignored; leaving the session is up to the caller.
func (g *Game) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CommandAppendColor:
		return g.AppendColor(cmd.Color)
	case CommandRemoveLast:
		return g.RemoveLastColor()
	case CommandSubmit:
		return g.SubmitGuess()
	default:
		return false
	}
}
