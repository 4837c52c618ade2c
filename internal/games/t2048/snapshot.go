package t2048

// Snapshot is a read-only copy of the session used for rendering,
// history records and determinism tests.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Score    int
	Moves    int
	Board    Board
	MaxTile  int
	Phase    Phase
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.state.Board()
	return Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Score:    g.state.Score(),
		Moves:    g.moves,
		Board:    board,
		MaxTile:  board.MaxTile(),
		Phase:    g.phase,
		TooSmall: g.tooSmall,
	}
}
