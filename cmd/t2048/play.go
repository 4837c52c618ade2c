package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/ledger"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game (on the game over screen)
  Q/Ctrl+C         - Quit

When the game ends your score is added to the top five list, which
stays on screen for a while (see score_display in the config).

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file: the TUI owns the terminal.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, logErr := openLogFile(cfg.Log.File)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger, err := newLogger(logOut, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	scores, err := ledger.NewFile(cfg.LedgerPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Ledger:  scores,
		Logger:  logger,
	}

	// Open history storage
	var store *storage.Store
	if cfg.HistoryPath != "" {
		store, err = storage.Open(cfg.HistoryPath)
		if err != nil {
			// Continue without history - game still works
			logger.Warn("could not open history database", "path", cfg.HistoryPath, "error", err)
			store = nil
		} else {
			opts.History = store
		}
	}

	game := t2048.New(tui.ThemeFromConfig(cfg.Theme))
	runErr := tui.Run(game, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
