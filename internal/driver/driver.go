// Package driver runs the interactive game session: it owns the raw
// terminal, feeds keyboard actions into the engine, and keeps the
// renderer in sync with the board and the terminal geometry.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/mkarpushin/tile2048/internal/game"
	"github.com/mkarpushin/tile2048/internal/layout"
	"github.com/mkarpushin/tile2048/internal/render"
	"github.com/mkarpushin/tile2048/internal/storage"
	"github.com/mkarpushin/tile2048/internal/term"
)

// ScoreSaver records a finished game's result. *storage.Store satisfies
// it; a nil saver disables persistence.
type ScoreSaver interface {
	SaveScore(score, maxTile int) (int64, error)
}

// Driver couples the game engine with rendering and score persistence.
// Terminal ownership is confined to Run.
type Driver struct {
	state    *game.State
	renderer *render.Renderer
	tunables layout.Tunables
	saver    ScoreSaver
	logger   *log.Logger

	// saved guards against recording the same finished game twice.
	saved bool
}

// New creates a driver for a fresh game. saver may be nil.
func New(seed int64, tun layout.Tunables, opts render.Options, out io.Writer, saver ScoreSaver, logger *log.Logger) *Driver {
	return &Driver{
		state:    game.NewState(seed),
		renderer: render.New(out, opts),
		tunables: tun,
		saver:    saver,
		logger:   logger,
	}
}

// Run plays one interactive session until the player quits or input
// ends. It puts the terminal into raw mode for the duration and always
// restores it on the way out.
func (d *Driver) Run() error {
	t, err := term.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer t.Restore()

	t.EnterAltScreen()
	t.HideCursor()

	d.relayout(t.Size())
	if err := d.renderer.Draw(d.state.Snapshot(), true); err != nil {
		return err
	}

	// The reader must be torn down on every exit path: a stale pump
	// would keep draining stdin and steal keystrokes from the menu or
	// the next session.
	reader := term.NewKeyReader(t.Input())
	defer reader.Close()

	actions := make(chan actionResult)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			a, err := reader.ReadAction()
			select {
			case actions <- actionResult{action: a, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-t.Resize():
			d.relayout(t.Size())
			if err := d.renderer.Draw(d.state.Snapshot(), true); err != nil {
				return err
			}

		case res := <-actions:
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("read input: %w", res.err)
			}
			quit, force := d.HandleAction(res.action)
			if quit {
				return nil
			}
			if err := d.renderer.Draw(d.state.Snapshot(), force); err != nil {
				return err
			}
		}
	}
}

type actionResult struct {
	action term.Action
	err    error
}

// HandleAction applies a single keyboard action to the engine. It
// reports whether the session should end and whether the next frame
// must be a full repaint.
func (d *Driver) HandleAction(a term.Action) (quit, force bool) {
	switch a {
	case term.ActionQuit:
		return true, false

	case term.ActionRestart:
		d.state.Restart()
		d.saved = false
		return false, true

	case term.ActionUp:
		d.move(game.DirUp)
	case term.ActionDown:
		d.move(game.DirDown)
	case term.ActionLeft:
		d.move(game.DirLeft)
	case term.ActionRight:
		d.move(game.DirRight)
	}

	return false, false
}

func (d *Driver) move(dir game.Direction) {
	d.state.ApplyMove(dir)
	if d.state.Outcome() == game.Lost {
		d.recordResult()
	}
}

// recordResult saves the finished game once. Persistence failures are
// logged and otherwise ignored: losing the game must not lose the
// session.
func (d *Driver) recordResult() {
	if d.saved || d.saver == nil {
		return
	}
	d.saved = true

	snap := d.state.Snapshot()
	if _, err := d.saver.SaveScore(snap.Score, snap.MaxTile); err != nil {
		if d.logger != nil {
			d.logger.Warn("failed to save score", "score", snap.Score, "err", err)
		}
	}
}

// State exposes the underlying engine state.
func (d *Driver) State() *game.State {
	return d.state
}

func (d *Driver) relayout(cols, rows int) {
	d.renderer.SetLayout(layout.Solve(cols, rows, d.tunables))
}

var _ ScoreSaver = (*storage.Store)(nil)
