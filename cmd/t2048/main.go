// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 [play]       - Play a game (default)
//	t2048 scores       - Show the top five scores
//	t2048 history      - Show statistics for every finished game
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible game
//	--fps <rate>        - Set redraw rate (default: from config)
//	--config <path>     - Use a custom config YAML
//	--scores <path>     - Set score ledger path (default: ~/.t2048/scoreboard.json)
//	--db <path>         - Set history database path (default: ~/.t2048/history.db)
//	--log-file <path>   - Set log file used while playing
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagFPS        int
	flagConfig     string
	flagScoresPath string
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is a sliding-tile puzzle on a 4x4 grid. Every move shifts all
tiles in one direction; equal tiles that collide merge into their sum.
The game ends when the board is full and no merge is possible.

Available commands:
  play     - Play a game (default)
  scores   - Show the top five scores
  history  - Show statistics for every finished game

Examples:
  t2048
  t2048 --seed 42
  t2048 scores
  t2048 history --limit 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.IntVar(&flagFPS, "fps", 0, "Redraw rate in ticks per second (0 = from config)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagScoresPath, "scores", "", "Path to the score ledger (overrides config)")
	flags.StringVar(&flagDBPath, "db", "", "Path to the history database (overrides config)")
	flags.StringVar(&flagLogFile, "log-file", "", "Log file used while playing (overrides config)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
