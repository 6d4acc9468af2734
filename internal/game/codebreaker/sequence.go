package codebreaker

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence is an ordered list of color indices. It is used both for the
// hidden solution and for guesses.
type Sequence []int

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Valid reports whether every element is a color index in [0, colors).
func (s Sequence) Valid(colors int) bool {
	for _, c := range s {
		if c < 0 || c >= colors {
			return false
		}
	}
	return true
}

// String formats the sequence with 1-based color numbers, matching the keys
// a player presses.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = strconv.Itoa(c + 1)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Hint is the score of a guess against the solution.
type Hint struct {
	Bulls int // Correct color, correct position
	Cows  int // Correct color, wrong position
}

// Solved reports whether the hint marks every hole as a bull.
func (h Hint) Solved(holes int) bool {
	return h.Bulls == holes
}

// String returns a compact representation such as "2B1C".
func (h Hint) String() string {
	return fmt.Sprintf("%dB%dC", h.Bulls, h.Cows)
}
