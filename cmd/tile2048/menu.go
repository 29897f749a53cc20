package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/mkarpushin/tile2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  tile2048 menu
  tile2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	for {
		best := 0
		if store != nil {
			if hs, err := store.HighScore(); err == nil {
				best = hs
			}
		}

		choice, err := tui.RunMenu(best)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		switch choice {
		case tui.MenuChoicePlay:
			if err := playOnce(store); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}

		case tui.MenuChoiceScores:
			width, height := 80, 24
			if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
				height = h
			}
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
