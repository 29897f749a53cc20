package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mkarpushin/tile2048/internal/game"
	"github.com/mkarpushin/tile2048/internal/layout"
)

func testLayout() layout.Layout {
	return layout.Solve(80, 24, layout.DefaultTunables())
}

// cellPaints counts painted cell rows by their background escapes.
// With a one-row cell height this equals the number of painted cells.
func cellPaints(out string) int {
	return strings.Count(out, "\x1b[48;5;")
}

// testOptions disables the lipgloss header bar so escape counting is
// independent of the environment's color profile.
func testOptions() Options {
	opts := DefaultOptions()
	opts.HeaderBackground = false
	return opts
}

func singleRowLayout() layout.Layout {
	l := testLayout()
	l.CellH = 1
	return l
}

func TestDrawPaintsEveryCellOnce(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, testOptions())
	r.SetLayout(singleRowLayout())

	s := game.NewState(42)
	if err := r.Draw(s.Snapshot(), false); err != nil {
		t.Fatal(err)
	}

	if got := cellPaints(buf.String()); got != game.BoardSize*game.BoardSize {
		t.Errorf("first frame painted %d cells, want %d", got, game.BoardSize*game.BoardSize)
	}
}

func TestDrawSkipsUnchangedCells(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, testOptions())
	r.SetLayout(singleRowLayout())

	s := game.NewState(42)
	if err := r.Draw(s.Snapshot(), false); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := r.Draw(s.Snapshot(), false); err != nil {
		t.Fatal(err)
	}

	if got := cellPaints(buf.String()); got != 0 {
		t.Errorf("unchanged frame painted %d cells, want 0", got)
	}

	// The header still repaints unconditionally.
	if !strings.Contains(buf.String(), "Score:") {
		t.Error("header must repaint every frame")
	}
}

func TestDrawPaintsOnlyChangedCells(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, testOptions())
	r.SetLayout(singleRowLayout())

	snap := game.Snapshot{}
	snap.Board[0][0] = 2
	if err := r.Draw(snap, false); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	snap.Board[1][2] = 4
	if err := r.Draw(snap, false); err != nil {
		t.Fatal(err)
	}

	if got := cellPaints(buf.String()); got != 1 {
		t.Errorf("painted %d cells, want exactly the changed one", got)
	}
	if !strings.Contains(buf.String(), "4") {
		t.Error("changed cell's value missing from output")
	}
}

func TestForcedRepaint(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, testOptions())
	r.SetLayout(singleRowLayout())

	s := game.NewState(42)
	if err := r.Draw(s.Snapshot(), false); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := r.Draw(s.Snapshot(), true); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if got := cellPaints(out); got != game.BoardSize*game.BoardSize {
		t.Errorf("forced frame painted %d cells, want all %d", got, game.BoardSize*game.BoardSize)
	}
	if !strings.Contains(out, "\x1b[2J") {
		t.Error("forced repaint should clear the screen first")
	}
}

func TestSetLayoutInvalidatesSnapshot(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, testOptions())
	r.SetLayout(singleRowLayout())

	s := game.NewState(42)
	if err := r.Draw(s.Snapshot(), false); err != nil {
		t.Fatal(err)
	}

	// A new layout means every screen position is unknown again.
	l := singleRowLayout()
	l.OriginX += 2
	r.SetLayout(l)

	buf.Reset()
	if err := r.Draw(s.Snapshot(), false); err != nil {
		t.Fatal(err)
	}

	if got := cellPaints(buf.String()); got != game.BoardSize*game.BoardSize {
		t.Errorf("post-relayout frame painted %d cells, want all %d", got, game.BoardSize*game.BoardSize)
	}
}

func TestBackgroundDisabled(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Background = false
	r := New(&buf, opts)
	r.SetLayout(singleRowLayout())

	snap := game.Snapshot{}
	snap.Board[0][0] = 2
	if err := r.Draw(snap, false); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "\x1b[48;5;") {
		t.Error("background escapes emitted with backgrounds disabled")
	}
	if !strings.Contains(buf.String(), "2") {
		t.Error("tile value missing with backgrounds disabled")
	}
}

func TestEmptyCellHasNoText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, testOptions())

	l := singleRowLayout()
	r.SetLayout(l)

	// A board with a single tile: every other cell paints as blank
	// background. Strip escapes and the board region must contain only
	// that tile's digits.
	snap := game.Snapshot{}
	snap.Board[3][3] = 8
	if err := r.Draw(snap, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "8") {
		t.Error("tile text missing")
	}

	// Every painted cell row has the shape bg-escape, fg-escape, content,
	// reset. The content must be blank except for the single tile.
	chunks := strings.Split(out, "\x1b[38;5;")
	for _, chunk := range chunks[1:] {
		i := strings.IndexByte(chunk, 'm')
		j := strings.Index(chunk, "\x1b")
		if i < 0 || j < 0 || j < i {
			t.Fatalf("malformed cell paint: %q", chunk)
		}
		content := strings.TrimSpace(chunk[i+1 : j])
		if content != "" && content != "8" {
			t.Fatalf("empty cell painted text %q", content)
		}
	}
}
