package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/ledger"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top five scores",
	Long: `Display the scores kept in the score ledger file.

Examples:
  t2048 scores
  t2048 scores --scores ./scoreboard.json`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scores, err := ledger.NewFile(cfg.LedgerPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score ledger: %v\n", err)
		os.Exit(1)
	}
	entries := scores.Load()

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %s\n", "Rank", "Score")
	fmt.Printf("  %-4s  %s\n", "----", "-----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %d\n", i+1, e.Score)
	}
}
