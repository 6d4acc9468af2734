package codebreaker

import "math/rand"

// GenerateSolution draws a random solution of the given length.
//
// With duplicates allowed every hole is an independent uniform draw from
// [0, colors). Otherwise holes distinct colors are sampled without
// replacement, which requires colors >= holes; Config.Validate enforces that
// before any game is built.
func GenerateSolution(rng *rand.Rand, colors, holes int, allowDuplicates bool) Sequence {
	solution := make(Sequence, holes)

	if allowDuplicates {
		for i := range solution {
			solution[i] = rng.Intn(colors)
		}
		return solution
	}

	// Partial Fisher-Yates: the first holes slots of pool end up as a uniform
	// random ordered sample.
	pool := make([]int, colors)
	for i := range pool {
		pool[i] = i
	}
	for i := range holes {
		j := i + rng.Intn(colors-i)
		pool[i], pool[j] = pool[j], pool[i]
		solution[i] = pool[i]
	}

	return solution
}
