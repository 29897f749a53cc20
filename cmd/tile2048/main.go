// tile2048 is a terminal rendition of the 2048 sliding-tile puzzle.
//
// Usage:
//
//	tile2048 menu    - Interactive menu with high scores
//	tile2048 play    - Start a game directly
//	tile2048 scores  - Print high scores
//
// Global flags:
//
//	--config <path> - Path to custom config YAML
//	--db <path>     - Set database path (default: ~/.tile2048/scores.db)
//	--seed <value>  - Set RNG seed for reproducible games
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkarpushin/tile2048/internal/config"
	"github.com/mkarpushin/tile2048/internal/driver"
	"github.com/mkarpushin/tile2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagDebugLog string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `tile2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys, WASD, or vim keys. Equal tiles merge
when they collide; reach the 2048 tile to win, and keep going for a
higher score.

Available commands:
  menu     - Interactive menu with high scores
  play     - Start a game directly
  scores   - View high scores

Examples:
  tile2048 menu
  tile2048 play
  tile2048 play --seed 42
  tile2048 scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tile2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug", "", "Write debug logs to this file (stdout belongs to the game)")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if flagDebugLog == "" {
			return nil
		}
		f, err := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		logger.SetOutput(f)
		logger.SetLevel(log.DebugLevel)
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// gameSeed resolves the RNG seed: the flag when set, wall clock otherwise.
func gameSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the scores database. A failure is downgraded to a
// warning and a nil store: the game works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playOnce loads the configuration and runs a single game session.
func playOnce(store *storage.Store) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlagOverrides(&cfg)

	d := driver.New(gameSeed(), cfg.Tunables(), cfg.RenderOptions(), os.Stdout, saverOrNil(store), logger)
	return d.Run()
}

// saverOrNil avoids handing the driver a typed nil interface.
func saverOrNil(store *storage.Store) driver.ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}
