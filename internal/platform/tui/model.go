package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/ledger"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// HistoryStore records finished games. *storage.Store implements it.
type HistoryStore interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// Options holds the dependencies of the model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Ledger  ledger.Ledger
	History HistoryStore // Optional
	Logger  *log.Logger  // Optional
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game    *t2048.Game
	screen  *core.Screen
	ledger  ledger.Ledger
	history HistoryStore
	logger  *log.Logger
	display config.ScoreDisplayConfig
	runtime core.RuntimeConfig
	keys    KeyMap
	now     func() time.Time

	started  time.Time
	recorded bool // Whether the current game has been recorded

	scores   *scoreScreen
	deadline time.Time // Zero when the score screen waits for a key

	quitting bool
}

// NewModel creates a new Bubble Tea model and starts the first game.
func NewModel(game *t2048.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ledger:  opts.Ledger,
		history: opts.History,
		logger:  logger,
		display: opts.Config.ScoreDisplay,
		runtime: cfg,
		keys:    DefaultKeyMap(),
		now:     time.Now,
	}
	m.startGame()
	return m
}

// startGame resets the session with the current runtime config.
func (m *Model) startGame() {
	m.game.Reset(m.runtime)
	m.started = m.now()
	m.recorded = false
	m.scores = nil
	m.deadline = time.Time{}
	m.logger.Info("game started", "seed", m.runtime.Seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps the key to an action and applies it immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores != nil {
		switch {
		case action == core.ActionRestart:
			m.runtime.Seed = m.now().UnixNano()
			m.startGame()
		case m.display.Dismissible:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	if result.Moved {
		m.logger.Debug("move", "action", action, "gained", result.Gained, "score", result.State.Score)
	}
	if result.State.GameOver {
		m.finishGame()
	}

	return m, nil
}

// finishGame records the final score once and opens the score screen.
// Storage failures are logged and never stop the game.
func (m *Model) finishGame() {
	if m.recorded {
		return
	}
	m.recorded = true

	final := m.game.Snapshot()
	m.logger.Info("game over", "score", final.Score, "max_tile", final.MaxTile, "moves", final.Moves)

	var entries []ledger.Entry
	if m.ledger != nil {
		if err := m.ledger.Record(final.Score); err != nil {
			m.logger.Warn("could not record score", "error", err)
		}
		entries = m.ledger.Load()
	}

	if m.history != nil {
		rec := storage.GameRecord{
			Score:    final.Score,
			MaxTile:  final.MaxTile,
			Moves:    final.Moves,
			Duration: m.now().Sub(m.started),
			Seed:     final.Seed,
		}
		if _, err := m.history.SaveGame(rec); err != nil {
			m.logger.Warn("could not save game history", "error", err)
		}
	}

	screen := newScoreScreen(final, entries, m.keys, m.display.Dismissible)
	m.scores = &screen
	if d := m.display.Duration(); d > 0 {
		m.deadline = m.now().Add(d)
	}
}

// handleResize processes window resize events without resetting the board.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick closes the score screen once its time is up.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.scores != nil && !m.deadline.IsZero() && !now.Before(m.deadline) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// ShowingScores reports whether the game over score screen is up.
func (m Model) ShowingScores() bool {
	return m.scores != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scores != nil {
		var remaining time.Duration
		if !m.deadline.IsZero() {
			remaining = m.deadline.Sub(m.now())
		}
		return m.scores.View(m.runtime.ScreenW, m.runtime.ScreenH, remaining)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *t2048.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
