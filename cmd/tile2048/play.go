package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarpushin/tile2048/internal/config"
)

var (
	flagWidthPct int
	flagAspect   float64
	flagNoColor  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game directly, skipping the menu.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  tile2048 play
  tile2048 play --seed 42
  tile2048 play --config ./my-config.yaml
  tile2048 play --width-pct 80 --no-color`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidthPct, "width-pct", 0, "Override board width percentage (0 = from config)")
	playCmd.Flags().Float64Var(&flagAspect, "aspect", 0, "Override cell aspect ratio (0 = from config)")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable tile background colors")
}

// applyFlagOverrides layers command-line overrides onto the loaded
// config. Zero values mean the flag was not given.
func applyFlagOverrides(cfg *config.Config) {
	if flagWidthPct > 0 {
		cfg.Layout.WidthPct = flagWidthPct
	}
	if flagAspect > 0 {
		cfg.Layout.Aspect = flagAspect
	}
	if flagNoColor {
		cfg.Display.Background = false
	}
	cfg.Clamp()
}

func runPlay(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if err := playOnce(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
