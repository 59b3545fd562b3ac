// blockfall is a falling-block puzzle game for the terminal, playable
// locally or over SSH.
//
// Usage:
//
//	blockfall play            - Play immediately
//	blockfall menu            - Pick a difficulty, view scores, play again
//	blockfall serve           - Start SSH server for remote play
//	blockfall scores          - Show high scores
//	blockfall config          - Print the effective game configuration
//	blockfall list            - List registered games
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.arcade/scores.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

// logger reports warnings and errors on stderr, outside the game screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "blockfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Falling-block puzzle in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal.

Pieces fall into a 10x20 well. Move and rotate them to complete rows;
every full row clears and scores 100 points. The game ends when a new
piece has no room to enter.

Available commands:
  play     - Start a game right away
  menu     - Interactive difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration
  list     - Show registered games

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the default game.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return blocks.GameID
}
