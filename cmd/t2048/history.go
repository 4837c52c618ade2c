package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryRecent bool
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show statistics for every finished game",
	Long: `Display statistics and the best games from the history database.
Unlike the top five ledger, every finished game is kept here.

Examples:
  t2048 history
  t2048 history --recent --limit 20
  t2048 history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to list")
	historyCmd.Flags().BoolVar(&flagHistoryRecent, "recent", false, "List the latest games instead of the best")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded games")
}

func runHistory(_ *cobra.Command, _ []string) {
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

	store, err := storage.Open(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.Clear(); err != nil {
			logger.Error("could not clear history", "error", err)
			return
		}
		logger.Info("history cleared", "path", cfg.HistoryPath)
		return
	}

	stats, err := store.Stats()
	if err != nil {
		logger.Error("could not read history", "error", err)
		return
	}

	fmt.Println("Game History - 2048")
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  Best score:    %d\n", stats.HighScore)
	fmt.Printf("  Best tile:     %d\n", stats.BestTile)
	fmt.Printf("  Average score: %.0f\n", stats.AvgScore)
	fmt.Printf("  Total moves:   %d\n", stats.TotalMoves)
	fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	fmt.Println()

	var games []storage.GameRecord
	if flagHistoryRecent {
		fmt.Println("Latest games")
		games, err = store.RecentGames(flagHistoryLimit)
	} else {
		fmt.Println("Best games")
		games, err = store.TopGames(flagHistoryLimit)
	}
	if err != nil {
		logger.Error("could not list games", "error", err)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "#", "Score", "Tile", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "-", "-----", "----", "-----", "----", "----")

	for i, g := range games {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-8s  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves,
			g.Duration.Round(time.Second).String(),
			g.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
