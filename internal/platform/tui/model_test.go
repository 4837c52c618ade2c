package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/ledger"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// One move left from a game over: row 0 merges to {4, 8, 16, _} and
// any spawned tile in the last cell leaves no equal neighbours.
var nearTerminal = t2048.Board{
	{2, 2, 8, 16},
	{32, 64, 128, 256},
	{512, 1024, 2048, 8},
	{8192, 16384, 32768, 65536},
}

type fakeLedger struct {
	recorded []int
	entries  []ledger.Entry
	err      error
}

func (f *fakeLedger) Load() []ledger.Entry {
	return f.entries
}

func (f *fakeLedger) Record(score int) error {
	f.recorded = append(f.recorded, score)
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, ledger.Entry{Score: score})
	return nil
}

type fakeHistory struct {
	saved []storage.GameRecord
}

func (f *fakeHistory) SaveGame(rec storage.GameRecord) (int64, error) {
	f.saved = append(f.saved, rec)
	return int64(len(f.saved)), nil
}

type testEnv struct {
	game    *t2048.Game
	ledger  *fakeLedger
	history *fakeHistory
	clock   time.Time
}

func newTestModel(t *testing.T, display config.ScoreDisplayConfig) (Model, *testEnv) {
	t.Helper()

	env := &testEnv{
		game:    t2048.New(ThemeFromConfig(config.DefaultConfig().Theme)),
		ledger:  &fakeLedger{},
		history: &fakeHistory{},
		clock:   time.Now(),
	}

	cfg := config.DefaultConfig()
	cfg.ScoreDisplay = display

	m := NewModel(env.game, Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7},
		Ledger:  env.ledger,
		History: env.history,
	})
	m.now = func() time.Time { return env.clock }
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func endGame(t *testing.T, m Model, env *testEnv) Model {
	t.Helper()
	if err := env.game.Load(nearTerminal, 0); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.ShowingScores() {
		t.Fatalf("expected score screen after final move, board:\n%v", env.game.Snapshot().Board)
	}
	return m
}

func TestModelAppliesMoveImmediately(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})
	if err := env.game.Load(t2048.Board{{2, 2, 0, 0}}, 0); err != nil {
		t.Fatal(err)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	if cmd != nil {
		t.Error("a move should not schedule a command")
	}
	snap := env.game.Snapshot()
	if snap.Board[0][0] != 4 || snap.Score != 4 || snap.Moves != 1 {
		t.Errorf("after left: %+v", snap)
	}
	if m.ShowingScores() {
		t.Error("score screen shown while playing")
	}
}

func TestModelRecordsOnceOnGameOver(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})
	m = endGame(t, m, env)

	if len(env.ledger.recorded) != 1 || env.ledger.recorded[0] != 4 {
		t.Errorf("ledger recorded %v, want [4]", env.ledger.recorded)
	}
	if len(env.history.saved) != 1 {
		t.Fatalf("history saved %d games, want 1", len(env.history.saved))
	}
	rec := env.history.saved[0]
	if rec.Score != 4 || rec.MaxTile != 65536 || rec.Moves != 1 || rec.Seed != 7 {
		t.Errorf("history record = %+v", rec)
	}

	// Keys on a non-dismissible screen neither quit nor record again.
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyLeft}, runeKey('x')} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		if cmd != nil || m.Quitting() {
			t.Errorf("key %q closed a non-dismissible score screen", msg.String())
		}
	}
	for range 3 {
		m, _ = update(t, m, TickMsg(env.clock))
	}
	if len(env.ledger.recorded) != 1 || len(env.history.saved) != 1 {
		t.Errorf("game recorded more than once: ledger %v, history %d",
			env.ledger.recorded, len(env.history.saved))
	}
}

func TestModelDismissScores(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10, Dismissible: true})
	m = endGame(t, m, env)

	m, cmd := update(t, m, runeKey('x'))

	if cmd == nil || !m.Quitting() {
		t.Error("any key should close a dismissible score screen")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelScoreDeadline(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})
	m = endGame(t, m, env)

	m, cmd := update(t, m, TickMsg(env.clock.Add(9*time.Second)))
	if m.Quitting() || cmd == nil {
		t.Fatal("score screen closed before its deadline")
	}

	env.clock = env.clock.Add(9 * time.Second)
	if !strings.Contains(m.View(), "Closing in 1s") {
		t.Errorf("View missing countdown:\n%s", m.View())
	}

	m, _ = update(t, m, TickMsg(env.clock.Add(time.Second)))
	if !m.Quitting() {
		t.Error("score screen should close at its deadline")
	}
}

func TestModelZeroDurationWaitsForKey(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 0, Dismissible: true})
	m = endGame(t, m, env)

	m, _ = update(t, m, TickMsg(env.clock.Add(time.Hour)))
	if m.Quitting() {
		t.Fatal("zero duration should wait for a key")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Quitting() {
		t.Error("key should close the score screen")
	}
}

func TestModelRestartFromScores(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10, Dismissible: true})
	m = endGame(t, m, env)

	m, _ = update(t, m, runeKey('r'))

	if m.Quitting() || m.ShowingScores() {
		t.Fatal("restart should start a new game")
	}
	snap := env.game.Snapshot()
	if snap.Phase != t2048.PhasePlaying || snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("new game snapshot = %+v", snap)
	}

	// The new game is recorded separately.
	endGame(t, m, env)
	if len(env.ledger.recorded) != 2 {
		t.Errorf("ledger recorded %v, want two games", env.ledger.recorded)
	}
}

func TestModelLedgerFailureShowsScores(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})
	env.ledger.err = errors.New("disk full")
	env.ledger.entries = []ledger.Entry{{Score: 500}, {Score: 400}}

	m = endGame(t, m, env)

	view := m.View()
	for _, want := range []string{"GAME OVER", "TOP SCORES", "500", "400"} {
		if !strings.Contains(view, want) {
			t.Errorf("score screen missing %q:\n%s", want, view)
		}
	}
}

func TestModelEmptyLedgerView(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})
	env.ledger.err = errors.New("read-only")

	m = endGame(t, m, env)

	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Errorf("expected empty ledger message:\n%s", m.View())
	}
}

func TestModelQuitKey(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil || !m.Quitting() {
		t.Error("q should quit")
	}
	if len(env.ledger.recorded) != 0 {
		t.Error("quitting mid-game should not record a score")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, env := newTestModel(t, config.ScoreDisplayConfig{DurationSecs: 10})
	before := env.game.Snapshot().Board

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !env.game.Snapshot().TooSmall {
		t.Error("small window not reported")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("expected too-small message")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if env.game.Snapshot().Board != before {
		t.Error("resize changed the board")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("expected HUD after resize")
	}
}

func TestModelWithoutStores(t *testing.T) {
	game := t2048.New(ThemeFromConfig(config.DefaultConfig().Theme))
	m := NewModel(game, Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
	})

	if m.runtime.Seed == 0 {
		t.Error("zero seed should be replaced with a time-based seed")
	}
	if m.runtime.TickRate != config.DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want config default", m.runtime.TickRate)
	}

	if err := game.Load(nearTerminal, 0); err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.ShowingScores() {
		t.Error("score screen should open without a ledger or history")
	}
}
