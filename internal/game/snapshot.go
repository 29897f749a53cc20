package game

// Snapshot captures the complete game state for tests and the driver.
type Snapshot struct {
	Board   Board
	Score   int
	MaxTile int
	Outcome Outcome
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.board,
		Score:   s.score,
		MaxTile: MaxTile(s.board),
		Outcome: s.outcome,
	}
}
