package codebreaker

// Score compares a guess with the solution. Both must have the same length and
// hold color indices below colors.
//
// Positions that match exactly count as bulls. All other positions feed two
// per-color tallies, and the cows are the sum over colors of the smaller
// tally, which is the size of the multiset intersection of the unmatched pegs.
func Score(guess, solution Sequence, colors int) Hint {
	bulls := 0
	guessCounts := make([]int, colors)
	solutionCounts := make([]int, colors)

	for i := range guess {
		if guess[i] == solution[i] {
			bulls++
			continue
		}
		guessCounts[guess[i]]++
		solutionCounts[solution[i]]++
	}

	cows := 0
	for c := range colors {
		cows += min(guessCounts[c], solutionCounts[c])
	}

	return Hint{Bulls: bulls, Cows: cows}
}
