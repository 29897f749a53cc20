// Package layout computes board geometry from live terminal dimensions.
// It contains no I/O; the solver is re-run on startup and whenever a
// resize notification arrives.
package layout

import "github.com/mkarpushin/tile2048/internal/game"

const (
	// MinCellWidth is the smallest usable cell width. A three-column
	// cell still fits a four-digit value's leading digits readably.
	MinCellWidth = 3
	// MinCellHeight is the smallest usable cell height.
	MinCellHeight = 1
)

// Tunables are the layout inputs read once from configuration.
type Tunables struct {
	// WidthPct reserves a percentage of the terminal width for the board.
	WidthPct int
	// Aspect is the desired cell-height-to-width ratio.
	Aspect float64
	// Padding is the outer padding around the board, in cells.
	Padding int
	// Gap is the spacing between adjacent cells, in cells.
	Gap int
	// HeaderRows are reserved at the top for title, score and controls.
	HeaderRows int
}

// DefaultTunables returns the layout defaults used when configuration
// is absent.
func DefaultTunables() Tunables {
	return Tunables{
		WidthPct:   60,
		Aspect:     0.4,
		Padding:    1,
		Gap:        1,
		HeaderRows: 4,
	}
}

// Layout is the solved board geometry. It is derived state: recomputed
// on resize, never persisted.
type Layout struct {
	CellW      int // cell width in columns
	CellH      int // cell height in rows
	Gap        int // spacing between adjacent cells
	OriginX    int // leftmost board column (0-based)
	OriginY    int // topmost board row (0-based)
	BoardW     int // total board width in columns
	BoardH     int // total board height in rows
	HeaderRows int // rows reserved above the board
	TermW      int // terminal width the layout was solved for
	TermH      int // terminal height the layout was solved for
}

// Solve computes cell dimensions and the board origin for the given
// terminal size. Width is the primary degree of freedom: it is derived
// from the reserved horizontal region, then height follows from the
// aspect ratio, with a single corrective shrink pass when the derived
// height overflows the vertical budget.
func Solve(cols, rows int, t Tunables) Layout {
	n := game.BoardSize

	usable := t.WidthPct * cols / 100
	cellW := (usable - 2*t.Padding - (n-1)*t.Gap) / n
	cellW = max(cellW, MinCellWidth)

	cellH := int(float64(cellW) * t.Aspect)
	cellH = max(cellH, MinCellHeight)

	// Vertical budget per cell row, after the header, outer padding and
	// inter-row gaps.
	budget := (rows - t.HeaderRows - 2*t.Padding - (n-1)*t.Gap) / n
	if cellH > budget {
		// Shrink width to the largest value whose derived height still
		// fits the budget, then re-derive height from the shrunk width.
		// Height is never chosen independently.
		for cellW > MinCellWidth && int(float64(cellW)*t.Aspect) > budget {
			cellW--
		}
		cellH = int(float64(cellW) * t.Aspect)
		cellH = max(min(cellH, max(budget, MinCellHeight)), MinCellHeight)
	}

	boardW := n*cellW + (n-1)*t.Gap
	boardH := n*cellH + (n-1)*t.Gap

	// Center horizontally in the full width and vertically in the rows
	// below the header; pin to the edge when the board overflows.
	originX := max((cols-boardW)/2, 0)
	availRows := rows - t.HeaderRows
	originY := t.HeaderRows + max((availRows-boardH)/2, 0)

	return Layout{
		CellW:      cellW,
		CellH:      cellH,
		Gap:        t.Gap,
		OriginX:    originX,
		OriginY:    originY,
		BoardW:     boardW,
		BoardH:     boardH,
		HeaderRows: t.HeaderRows,
		TermW:      cols,
		TermH:      rows,
	}
}

// CellOrigin returns the top-left terminal coordinate of cell (x, y).
func (l Layout) CellOrigin(x, y int) (col, row int) {
	col = l.OriginX + x*(l.CellW+l.Gap)
	row = l.OriginY + y*(l.CellH+l.Gap)
	return col, row
}
