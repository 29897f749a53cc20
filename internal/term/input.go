package term

import (
	"io"
	"time"

	"github.com/muesli/cancelreader"
)

// Action represents a semantic game action, abstracted from physical
// key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// escTimeout bounds the wait for escape-sequence continuation bytes.
// A lone Esc press resolves within this window.
const escTimeout = 50 * time.Millisecond

type readResult struct {
	b   byte
	err error
}

// KeyReader turns a raw byte stream into game actions. A pump
// goroutine feeds single bytes into a channel so the escape-sequence
// state machine can wait a bounded window for continuation bytes.
// Close stops the pump; without it the pump would keep draining the
// stream and steal keystrokes from the next consumer.
type KeyReader struct {
	source  cancelreader.CancelReader
	events  chan readResult
	timeout time.Duration
}

// NewKeyReader starts reading keystrokes from r.
func NewKeyReader(r io.Reader) *KeyReader {
	source, err := cancelreader.NewReader(r)
	if err != nil {
		source = uncancelable{r}
	}

	k := &KeyReader{
		source:  source,
		events:  make(chan readResult, 8),
		timeout: escTimeout,
	}

	go func() {
		defer close(k.events)
		buf := make([]byte, 1)
		for {
			n, err := k.source.Read(buf)
			if n > 0 {
				k.events <- readResult{b: buf[0]}
			}
			if err != nil {
				k.events <- readResult{err: err}
				return
			}
		}
	}()

	return k
}

// Close aborts the pump's pending read and stops the goroutine. The
// underlying stream stays open with its unread bytes intact: keystrokes
// arriving after the session belong to whoever reads the stream next.
func (k *KeyReader) Close() error {
	k.source.Cancel()
	return k.source.Close()
}

// uncancelable stands in for streams the cancelable reader cannot
// wrap; the pump then only stops on stream end.
type uncancelable struct {
	io.Reader
}

func (uncancelable) Cancel() bool { return false }
func (uncancelable) Close() error { return nil }

// ReadAction blocks for one keystroke and maps it to an action.
// Unrecognized keys map to ActionNone; callers ignore those and keep
// reading. An error (including io.EOF on a closed input) is terminal.
func (k *KeyReader) ReadAction() (Action, error) {
	res, ok := <-k.events
	if !ok {
		return ActionNone, io.EOF
	}
	if res.err != nil {
		return ActionNone, res.err
	}

	if res.b != 0x1b {
		return mapKey(res.b), nil
	}

	// Pending escape: wait up to the bounded window for each of the two
	// continuation bytes of an arrow sequence. Timeout resolves to a
	// bare Esc deterministically.
	b1, ok := k.readWithin(k.timeout)
	if !ok || b1 != '[' {
		return ActionNone, nil
	}
	b2, ok := k.readWithin(k.timeout)
	if !ok {
		return ActionNone, nil
	}

	switch b2 {
	case 'A':
		return ActionUp, nil
	case 'B':
		return ActionDown, nil
	case 'C':
		return ActionRight, nil
	case 'D':
		return ActionLeft, nil
	}
	return ActionNone, nil
}

// readWithin waits up to d for the next byte. Returns ok=false on
// timeout, stream end or read error.
func (k *KeyReader) readWithin(d time.Duration) (byte, bool) {
	select {
	case res, ok := <-k.events:
		if !ok || res.err != nil {
			return 0, false
		}
		return res.b, true
	case <-time.After(d):
		return 0, false
	}
}

// mapKey maps a plain keystroke to an action. Arrow keys, wasd and
// hjkl (either case) move; q quits; r restarts.
func mapKey(b byte) Action {
	switch b {
	case 'w', 'W', 'k', 'K':
		return ActionUp
	case 's', 'S', 'j', 'J':
		return ActionDown
	case 'a', 'A', 'h', 'H':
		return ActionLeft
	case 'd', 'D', 'l', 'L':
		return ActionRight
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q', 0x03: // Ctrl+C
		return ActionQuit
	}
	return ActionNone
}
