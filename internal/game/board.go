package game

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Target is the tile value that flags a win. Reaching it does not
// end the game; play continues until no move remains.
const Target = 2048

// Board represents a 4x4 game board. Zero means empty; every non-zero
// cell holds a power of two.
type Board [BoardSize][BoardSize]int

// mergeLine compacts a line toward index 0 and merges adjacent equal
// pairs once each. A tile produced by a merge never merges again within
// the same move: the scan advances past both consumed elements.
// Returns the resulting line and the score gained from merges.
func mergeLine(line [BoardSize]int) (result [BoardSize]int, score int) {
	// Compact non-zero values, preserving order.
	compact := make([]int, 0, BoardSize)
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	writePos := 0
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			result[writePos] = compact[i] * 2
			score += result[writePos]
			i++ // skip the consumed partner
		} else {
			result[writePos] = compact[i]
		}
		writePos++
	}

	return result, score
}

// reverseLine reverses a line.
func reverseLine(line [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = line[BoardSize-1-i]
	}
	return result
}

// column extracts column x as a line.
func column(board Board, x int) [BoardSize]int {
	var line [BoardSize]int
	for y := range BoardSize {
		line[y] = board[y][x]
	}
	return line
}

// setColumn writes a line back into column x.
func setColumn(board *Board, x int, line [BoardSize]int) {
	for y := range BoardSize {
		board[y][x] = line[y]
	}
}

// Slide performs a move in the given direction.
// Rows serve as lines for left/right moves, columns for up/down.
// Right and down reuse the same merge routine through line reversal.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	newBoard := board
	totalScore := 0
	changed := false

	for i := range BoardSize {
		var line [BoardSize]int
		switch dir {
		case DirLeft, DirRight:
			line = board[i]
		case DirUp, DirDown:
			line = column(board, i)
		default:
			return board, 0, false
		}

		reversed := dir == DirRight || dir == DirDown
		if reversed {
			line = reverseLine(line)
		}

		newLine, score := mergeLine(line)
		totalScore += score

		if reversed {
			newLine = reverseLine(newLine)
			line = reverseLine(line)
		}

		if newLine != line {
			changed = true
		}

		switch dir {
		case DirLeft, DirRight:
			newBoard[i] = newLine
		case DirUp, DirDown:
			setColumn(&newBoard, i, newLine)
		}
	}

	return newBoard, totalScore, changed
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically
// adjacent pair holds equal non-zero values.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible. False only when every
// cell is occupied and no adjacent pair can merge.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// HasWon returns true if any tile reached the target value.
func HasWon(board Board) bool {
	return MaxTile(board) >= Target
}
