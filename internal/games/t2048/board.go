package t2048

import (
	"errors"
	"fmt"
)

// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.1

// ErrInvalidBoard is returned when a board holds a value that is neither
// zero nor a power of two.
var ErrInvalidBoard = errors.New("t2048: invalid board")

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board is the 4x4 grid, indexed [row][col]. Zero means empty.
type Board [Size][Size]int

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

// Validate reports whether every non-zero value is a power of two.
func (b Board) Validate() error {
	for r := range Size {
		for c := range Size {
			v := b[r][c]
			if v < 0 || v == 1 || v&(v-1) != 0 {
				return fmt.Errorf("%w: value %d at (%d, %d)", ErrInvalidBoard, v, r, c)
			}
		}
	}
	return nil
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += b[r][c]
		}
	}
	return total
}

// Rand is the random source used for tile spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// MoveResult is the outcome of one move attempt.
type MoveResult struct {
	Moved  bool  // Whether any cell changed
	Gained int   // Score gained from merges
	Board  Board // Board after the move, before any spawn
}

// BoardState owns the grid and the score of one game session.
type BoardState struct {
	board Board
	score int
	rng   Rand
}

// NewBoardState creates a board with two spawned tiles.
func NewBoardState(rng Rand) *BoardState {
	s := &BoardState{rng: rng}
	s.SpawnRandomTile()
	s.SpawnRandomTile()
	return s
}

// RestoreBoardState creates a state from an existing board and score.
func RestoreBoardState(board Board, score int, rng Rand) (*BoardState, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	if score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", ErrInvalidBoard, score)
	}
	return &BoardState{board: board, score: score, rng: rng}, nil
}

// Board returns a copy of the grid.
func (s *BoardState) Board() Board {
	return s.board
}

// Score returns the accumulated score.
func (s *BoardState) Score() int {
	return s.score
}

// lineCells returns the coordinates of line i for a move in dir,
// leading cell first.
func lineCells(dir Direction, i int) [Size]Cell {
	var cells [Size]Cell
	for k := range Size {
		switch dir {
		case DirLeft:
			cells[k] = Cell{Row: i, Col: k}
		case DirRight:
			cells[k] = Cell{Row: i, Col: Size - 1 - k}
		case DirUp:
			cells[k] = Cell{Row: k, Col: i}
		case DirDown:
			cells[k] = Cell{Row: Size - 1 - k, Col: i}
		}
	}
	return cells
}

// ApplyMove slides every line toward dir and merges tiles.
// The score grows by the merged total. No tile is spawned.
func (s *BoardState) ApplyMove(dir Direction) MoveResult {
	switch dir {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		return MoveResult{Board: s.board}
	}

	var res MoveResult
	for i := range Size {
		cells := lineCells(dir, i)

		var line Line
		for k, cell := range cells {
			line[k] = s.board[cell.Row][cell.Col]
		}

		collapsed, gained := CollapseLine(line)
		res.Gained += gained

		for k, cell := range cells {
			if s.board[cell.Row][cell.Col] != collapsed[k] {
				res.Moved = true
			}
			s.board[cell.Row][cell.Col] = collapsed[k]
		}
	}

	s.score += res.Gained
	res.Board = s.board
	return res
}

// SpawnRandomTile places a 2 (or a 4 with Spawn4Probability) on a
// uniformly chosen empty cell. Returns false if the board is full.
func (s *BoardState) SpawnRandomTile() (Cell, bool) {
	empty := s.board.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < Spawn4Probability {
		value = 4
	}

	s.board[cell.Row][cell.Col] = value
	return cell, true
}

// IsTerminal reports whether the board is full and no adjacent pair is equal.
func (s *BoardState) IsTerminal() bool {
	for r := range Size {
		for c := range Size {
			v := s.board[r][c]
			if v == 0 {
				return false
			}
			if c < Size-1 && s.board[r][c+1] == v {
				return false
			}
			if r < Size-1 && s.board[r+1][c] == v {
				return false
			}
		}
	}
	return true
}
