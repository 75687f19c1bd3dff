// term2048 is a terminal rendition of the 2048 sliding-tile game.
//
// Usage:
//
//	term2048 play             - Play interactively
//	term2048 scores           - Show recorded high scores
//	term2048 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Use a custom config YAML
//	--db <path>      - Set database path (default: ~/.term2048/scores.db)
//	--seed <value>   - Set RNG seed for reproducible games
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is a terminal rendition of the 2048 sliding-tile game.

Slide tiles with the arrow keys, WASD or vim keys. Equal tiles merge
and score; the game ends when no move changes the board.

Available commands:
  play     - Play interactively, record or replay a session
  scores   - View recorded high scores
  serve    - Start SSH server for remote play

Examples:
  term2048 play
  term2048 play --seed 42 --record game.log
  term2048 play --playback game.log --delay 100
  term2048 scores --tui
  term2048 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
