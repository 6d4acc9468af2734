package codebreaker

// Row is a submitted guess together with its hint.
type Row struct {
	Guess Sequence
	Hint  Hint
}

// Snapshot is a read-only copy of everything the display needs.
// Solution is nil while the round is still in play.
type Snapshot struct {
	Config   Config
	Status   Status
	Rows     []Row
	Current  Sequence
	Solution Sequence
}

// Snapshot captures the current game state. The result shares no memory
// with the game.
func (g *Game) Snapshot() Snapshot {
	rows := make([]Row, len(g.guesses))
	for i := range g.guesses {
		rows[i] = Row{Guess: g.guesses[i].Clone(), Hint: g.hints[i]}
	}

	snap := Snapshot{
		Config:  g.cfg,
		Status:  g.Status(),
		Rows:    rows,
		Current: g.current.Clone(),
	}
	if snap.Status.Terminal() {
		snap.Solution = g.solution.Clone()
	}
	return snap
}

// Revealed reports whether the solution may be shown.
func (s Snapshot) Revealed() bool {
	return s.Solution != nil
}

// GuessesLeft returns how many guesses remain in the round.
func (s Snapshot) GuessesLeft() int {
	return max(s.Config.MaxGuesses-len(s.Rows), 0)
}
