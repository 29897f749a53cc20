// Package render draws the board onto a raw terminal. It keeps a
// snapshot of the last-painted tile values and repaints only the cells
// that changed, so a typical frame costs a handful of escape sequences
// instead of a full-screen redraw.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarpushin/tile2048/internal/game"
	"github.com/mkarpushin/tile2048/internal/layout"
)

// unset marks a snapshot entry whose screen position holds unknown
// content and must be painted on the next frame.
const unset = -1

// Options control the cosmetic parts of the renderer.
type Options struct {
	// Background enables colored tile backgrounds; off paints values as
	// plain text.
	Background bool
	// HeaderBackground fills the header region with a background bar.
	HeaderBackground bool
	// RowDelay pauses after each painted cell row, for deliberately
	// slow dramatic painting. Zero disables it.
	RowDelay time.Duration
}

// DefaultOptions returns the renderer defaults.
func DefaultOptions() Options {
	return Options{
		Background:       true,
		HeaderBackground: true,
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	scoreStyle    = lipgloss.NewStyle().Bold(true)
	controlsStyle = lipgloss.NewStyle().Faint(true)
	wonStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerBar     = lipgloss.NewStyle().Background(lipgloss.Color("236"))
)

// Renderer paints game frames to a raw terminal writer. It owns the
// RenderSnapshot; the game state is only read.
type Renderer struct {
	out  *bufio.Writer
	opts Options
	lay  layout.Layout
	snap [game.BoardSize][game.BoardSize]int
}

// New creates a renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:  bufio.NewWriter(w),
		opts: opts,
	}
	r.Invalidate()
	return r
}

// SetLayout installs a freshly solved layout and invalidates the
// snapshot: every cell repaints on the next frame.
func (r *Renderer) SetLayout(l layout.Layout) {
	r.lay = l
	r.Invalidate()
}

// Layout returns the currently installed layout.
func (r *Renderer) Layout() layout.Layout {
	return r.lay
}

// Invalidate forgets everything painted so far.
func (r *Renderer) Invalidate() {
	for y := range game.BoardSize {
		for x := range game.BoardSize {
			r.snap[y][x] = unset
		}
	}
}

// Draw paints one frame. The header repaints unconditionally; board
// cells repaint only where the value differs from the snapshot, or all
// of them when force is set. The snapshot is updated to match the
// board afterward.
func (r *Renderer) Draw(s game.Snapshot, force bool) error {
	if force {
		r.clearScreen()
		r.Invalidate()
	}

	r.drawHeader(s)

	for y := range game.BoardSize {
		for x := range game.BoardSize {
			v := s.Board[y][x]
			if r.snap[y][x] == v {
				continue
			}
			r.paintCell(x, y, v)
			r.snap[y][x] = v
		}
	}

	// Park the cursor under the board so stray output can't land in it.
	r.moveTo(0, r.lay.OriginY+r.lay.BoardH)
	return r.out.Flush()
}

// drawHeader repaints the title/score/controls region. It is a fixed,
// cheap cost per frame and is not subject to diffing.
func (r *Renderer) drawHeader(s game.Snapshot) {
	status := ""
	switch s.Outcome {
	case game.Won:
		status = wonStyle.Render("  you made " + strconv.Itoa(game.Target) + "! keep going")
	case game.Lost:
		status = lostStyle.Render("  no moves left - R to restart, Q to quit")
	}

	lines := []string{
		titleStyle.Render("2048"),
		scoreStyle.Render(fmt.Sprintf("Score: %d", s.Score)) + status,
		controlsStyle.Render("arrows/wasd/hjkl move · R restart · Q quit"),
	}

	for row := 0; row < r.lay.HeaderRows; row++ {
		r.moveTo(0, row)
		r.out.WriteString("\x1b[2K") // clear the whole header line
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		if r.opts.HeaderBackground {
			line = headerBar.Width(r.lay.TermW).Render(line)
		}
		r.out.WriteString(line)
	}
}

// paintCell repaints a single cell: a CellW x CellH block of background
// with the value centered on the middle row. Empty cells paint as blank
// background with no text.
func (r *Renderer) paintCell(x, y, value int) {
	col, row := r.lay.CellOrigin(x, y)
	textRow := r.lay.CellH / 2

	text := ""
	if value != 0 {
		text = strconv.Itoa(value)
		if len(text) > r.lay.CellW {
			text = text[:r.lay.CellW]
		}
	}
	padLeft := (r.lay.CellW - len(text)) / 2
	padRight := r.lay.CellW - len(text) - padLeft

	bg := Background(value)
	fg := Foreground(bg)

	for i := 0; i < r.lay.CellH; i++ {
		r.moveTo(col, row+i)
		if r.opts.Background {
			fmt.Fprintf(r.out, "\x1b[48;5;%dm\x1b[38;5;%dm", bg, fg)
		}
		if i == textRow && text != "" {
			r.pad(padLeft)
			r.out.WriteString(text)
			r.pad(padRight)
		} else {
			r.pad(r.lay.CellW)
		}
		r.out.WriteString("\x1b[0m")

		if r.opts.RowDelay > 0 {
			r.out.Flush()
			time.Sleep(r.opts.RowDelay)
		}
	}
}

// pad writes n spaces.
func (r *Renderer) pad(n int) {
	for i := 0; i < n; i++ {
		r.out.WriteByte(' ')
	}
}

// moveTo positions the cursor at a 0-based column/row.
func (r *Renderer) moveTo(col, row int) {
	fmt.Fprintf(r.out, "\x1b[%d;%dH", row+1, col+1)
}

// clearScreen erases the whole terminal, removing stale content left
// at the board's previous position after a relayout.
func (r *Renderer) clearScreen() {
	r.out.WriteString("\x1b[2J")
}
