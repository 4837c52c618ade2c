// Package t2048 implements the classic 2048 sliding-tile puzzle.
//
// The board engine (CollapseLine, BoardState) is pure and has no
// dependency on the terminal; Game wraps it into a session with a
// Playing/GameOver state machine that the platform drives.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Phase is the session state.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Minimum screen size: board plus HUD and controls line.
const (
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// Game implements a single 2048 session.
type Game struct {
	theme Theme
	seed  int64
	tick  uint64

	state *BoardState
	phase Phase
	moves int

	lastSpawn    Cell
	hasLastSpawn bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game that renders with the given theme.
// Reset must be called before the first Step.
func New(theme Theme) *Game {
	return &Game{theme: theme}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new session: empty score, two spawned tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.moves = 0
	g.phase = PhasePlaying
	g.hasLastSpawn = false
	g.state = NewBoardState(rand.New(rand.NewSource(cfg.Seed)))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Load replaces the board and score of the current session, keeping its
// random source. Used to replay a saved position; Reset must have
// been called first.
func (g *Game) Load(board Board, score int) error {
	state, err := RestoreBoardState(board, score, g.state.rng)
	if err != nil {
		return err
	}
	g.state = state
	g.moves = 0
	g.hasLastSpawn = false
	g.phase = PhasePlaying
	if state.IsTerminal() {
		g.phase = PhaseGameOver
	}
	return nil
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Step applies at most one move from the input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// The board is not visible, so moves would be blind.
	if g.tooSmall || g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res := g.state.ApplyMove(dir)
	if !res.Moved {
		return core.StepResult{State: g.State()}
	}

	g.moves++
	g.lastSpawn, g.hasLastSpawn = g.state.SpawnRandomTile()

	if g.state.IsTerminal() {
		g.phase = PhaseGameOver
	}

	return core.StepResult{
		State:  g.State(),
		Moved:  true,
		Gained: res.Gained,
	}
}

// directionFor maps the first directional action in the frame to a Direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.phase == PhaseGameOver,
	}
}
