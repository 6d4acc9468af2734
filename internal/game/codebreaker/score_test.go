package codebreaker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// classicScore is the two-phase algorithm: mark exact matches, then pair off
// remaining pegs of equal color one at a time.
func classicScore(guess, solution Sequence) Hint {
	g := guess.Clone()
	s := solution.Clone()

	bulls := 0
	for i := range g {
		if g[i] == s[i] {
			bulls++
			g[i] = -2
			s[i] = -1
		}
	}

	cows := 0
	for i := range g {
		for j := range s {
			if g[i] == s[j] {
				cows++
				g[i] = -2
				s[j] = -1
			}
		}
	}

	return Hint{Bulls: bulls, Cows: cows}
}

// randomPair returns a guess and solution of the same random length.
func randomPair(rng *rand.Rand) (guess, solution Sequence, colors int) {
	colors = 1 + rng.Intn(PaletteSize)
	holes := 1 + rng.Intn(8)
	return GenerateSolution(rng, colors, holes, true), GenerateSolution(rng, colors, holes, true), colors
}

func TestScoreKnownCases(t *testing.T) {
	tests := []struct {
		name     string
		guess    Sequence
		solution Sequence
		colors   int
		expected Hint
	}{
		{"no common color", Sequence{1, 1, 1, 1}, Sequence{5, 4, 3, 2}, 6, Hint{0, 0}},
		{"one bull two cows", Sequence{1, 2, 3, 4}, Sequence{5, 4, 3, 2}, 6, Hint{1, 2}},
		{"three cows", Sequence{4, 3, 2, 1}, Sequence{5, 4, 3, 2}, 6, Hint{0, 3}},
		{"three bulls", Sequence{5, 4, 3, 1}, Sequence{5, 4, 3, 2}, 6, Hint{3, 0}},
		{"solved", Sequence{5, 4, 3, 2}, Sequence{5, 4, 3, 2}, 6, Hint{4, 0}},
		{"repeats in both", Sequence{0, 1, 0, 1}, Sequence{0, 0, 1, 1}, 2, Hint{2, 2}},
		{"repeats counted as multiset", Sequence{2, 2, 1, 1}, Sequence{1, 1, 2, 2}, 3, Hint{0, 4}},
		{"bull does not also count as cow", Sequence{0, 0, 0, 0}, Sequence{0, 1, 2, 3}, 4, Hint{1, 0}},
		{"extra guess repeats ignored", Sequence{1, 1, 1, 2}, Sequence{2, 1, 3, 3}, 4, Hint{1, 1}},
		{"single hole miss", Sequence{0}, Sequence{1}, 2, Hint{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Score(tt.guess, tt.solution, tt.colors))
		})
	}
}

func TestScoreMatchesClassicAlgorithm(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 5000 {
		guess, solution, colors := randomPair(rng)
		require.Equal(t, classicScore(guess, solution), Score(guess, solution, colors),
			"guess %v solution %v", guess, solution)
	}
}

func TestScoreInvariantUnderRelabeling(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for range 2000 {
		guess, solution, colors := randomPair(rng)
		perm := rng.Perm(colors)

		relabel := func(s Sequence) Sequence {
			out := make(Sequence, len(s))
			for i, c := range s {
				out[i] = perm[c]
			}
			return out
		}

		require.Equal(t, Score(guess, solution, colors), Score(relabel(guess), relabel(solution), colors))
	}
}

func TestScoreBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 2000 {
		guess, solution, colors := randomPair(rng)
		hint := Score(guess, solution, colors)
		require.GreaterOrEqual(t, hint.Bulls, 0)
		require.GreaterOrEqual(t, hint.Cows, 0)
		require.LessOrEqual(t, hint.Bulls+hint.Cows, len(solution))
	}
}

func TestScorePerfectGuess(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for range 500 {
		_, solution, colors := randomPair(rng)
		require.Equal(t, Hint{Bulls: len(solution), Cows: 0}, Score(solution, solution, colors))
	}
}

func TestScoreDisjointColors(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range 500 {
		holes := 1 + rng.Intn(6)
		// Guess draws from colors {0,1,2}, solution from {3,4,5,6}.
		guess := make(Sequence, holes)
		solution := make(Sequence, holes)
		for i := range holes {
			guess[i] = rng.Intn(3)
			solution[i] = 3 + rng.Intn(4)
		}
		require.Equal(t, Hint{}, Score(guess, solution, PaletteSize))
	}
}

func TestScoreDoesNotModifyInputs(t *testing.T) {
	guess := Sequence{0, 1, 1, 2}
	solution := Sequence{1, 0, 2, 2}
	Score(guess, solution, 3)
	require.Equal(t, Sequence{0, 1, 1, 2}, guess)
	require.Equal(t, Sequence{1, 0, 2, 2}, solution)
}
