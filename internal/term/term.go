// Package term wraps the raw terminal: mode switching, size queries,
// resize notification and single-keystroke input. It is the only
// package that touches the host terminal directly.
package term

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Fallback dimensions used when the terminal size cannot be queried.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// Terminal owns the controlling terminal while the game runs: raw
// mode, the alternate screen and cursor visibility. Restore must be
// called on every exit path.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *xterm.State
	resize   chan struct{}
	sigs     chan os.Signal
}

// Open switches the terminal to raw single-keystroke mode (no line
// buffering, no echo) and starts listening for resize signals.
func Open() (*Terminal, error) {
	in := os.Stdin
	out := os.Stdout

	oldState, err := xterm.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("term: cannot enter raw mode: %w", err)
	}

	t := &Terminal{
		in:       in,
		out:      out,
		oldState: oldState,
		resize:   make(chan struct{}, 1),
		sigs:     make(chan os.Signal, 1),
	}

	signal.Notify(t.sigs, unix.SIGWINCH)
	go forwardResize(t.sigs, t.resize)

	return t, nil
}

// forwardResize coalesces resize signals into a single-slot
// notification: many SIGWINCHes while the loop is busy collapse into
// one relayout. It exits when sigs is closed.
func forwardResize(sigs <-chan os.Signal, resize chan<- struct{}) {
	for range sigs {
		select {
		case resize <- struct{}{}:
		default:
		}
	}
}

// Restore returns the terminal to canonical mode, leaves the alternate
// screen and shows the cursor. Safe to call on any exit path.
func (t *Terminal) Restore() {
	if t.sigs != nil {
		signal.Stop(t.sigs)
		// No more deliveries after Stop; closing lets the forwarder exit.
		close(t.sigs)
		t.sigs = nil
	}
	t.LeaveAltScreen()
	t.ShowCursor()
	if t.oldState != nil {
		//nolint:errcheck // Best-effort restore during teardown
		xterm.Restore(int(t.in.Fd()), t.oldState)
	}
}

// Resize returns the capacity-one notification channel. Receiving from
// it means terminal geometry may have changed since the last layout.
func (t *Terminal) Resize() <-chan struct{} {
	return t.resize
}

// Size reports the terminal dimensions, falling back to 80x24 when the
// query fails rather than failing the program.
func (t *Terminal) Size() (cols, rows int) {
	cols, rows, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return FallbackCols, FallbackRows
	}
	return cols, rows
}

// Input returns the file keystrokes are read from.
func (t *Terminal) Input() *os.File {
	return t.in
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *Terminal) EnterAltScreen() {
	fmt.Fprint(t.out, "\x1b[?1049h")
}

// LeaveAltScreen switches back to the main screen buffer.
func (t *Terminal) LeaveAltScreen() {
	fmt.Fprint(t.out, "\x1b[?1049l")
}

// HideCursor makes the cursor invisible.
func (t *Terminal) HideCursor() {
	fmt.Fprint(t.out, "\x1b[?25l")
}

// ShowCursor makes the cursor visible again.
func (t *Terminal) ShowCursor() {
	fmt.Fprint(t.out, "\x1b[?25h")
}

// Output returns the writer frames are painted to.
func (t *Terminal) Output() *os.File {
	return t.out
}
