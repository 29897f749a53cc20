package game

import "math/rand"

// Outcome represents the high-level game outcome.
type Outcome int

const (
	// Playing means moves are still accepted.
	Playing Outcome = iota
	// Won means some tile reached the target. Play continues; the flag
	// is sticky for display purposes only.
	Won
	// Lost means no legal move remains. Only restart and quit are
	// accepted.
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// spawnFourChance is the probability that a spawned tile is a 4
// instead of a 2.
const spawnFourChance = 0.10

// State owns the board, score and outcome for one game. It is mutated
// only by its own methods; callers hold exclusive ownership.
type State struct {
	board   Board
	score   int
	outcome Outcome
	rng     *rand.Rand
}

// NewState creates a fresh game seeded for tile spawning and spawns
// the two initial tiles.
func NewState(seed int64) *State {
	s := &State{
		rng: rand.New(rand.NewSource(seed)),
	}
	s.Restart()
	return s
}

// Board returns a copy of the current board.
func (s *State) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Outcome returns the current outcome.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Restart reinitializes the board and score and spawns two tiles.
// The RNG stream is kept so consecutive games stay deterministic for
// a given seed.
func (s *State) Restart() {
	s.board = Board{}
	s.score = 0
	s.outcome = Playing
	s.SpawnTile()
	s.SpawnTile()
}

// SpawnTile places a 2 (or, with probability 1/10, a 4) in a uniformly
// chosen empty cell. Returns false without modifying the board when no
// empty cell exists; a full board is expected, not an error.
func (s *State) SpawnTile() bool {
	empty := EmptyCells(s.board)
	if len(empty) == 0 {
		return false
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < spawnFourChance {
		value = 4
	}
	s.board[cell.Y][cell.X] = value
	return true
}

// ApplyMove slides the board in the given direction. If the board
// changed, the merge score is added, one tile is spawned and the
// outcome is recomputed. Moves are ignored once the game is lost.
// Returns whether the board changed.
func (s *State) ApplyMove(dir Direction) bool {
	if s.outcome == Lost {
		return false
	}

	newBoard, gained, changed := Slide(s.board, dir)
	if !changed {
		return false
	}

	s.board = newBoard
	s.score += gained
	s.SpawnTile()

	switch {
	case !CanMove(s.board):
		s.outcome = Lost
	case HasWon(s.board):
		s.outcome = Won
	}
	// A Won outcome never reverts to Playing; Lost wins over Won when
	// the board locks up after the target was reached.

	return true
}
