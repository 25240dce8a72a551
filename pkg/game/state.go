// Package game implements the Connect-Four board used by both the MCTS
// engine and the symbolic learning pipeline.
package game

import "github.com/pkg/errors"

const (
	Rows    = 6
	Columns = 7
	Connect = 4
)

// ErrIllegalMove is returned by Play when the target column is full.
var ErrIllegalMove = errors.New("game: illegal move")

// Move records where a piece landed.
type Move struct {
	Row, Col int
}

// State is a Connect-Four position. The zero value is not valid; use New.
type State struct {
	Board    [Rows][Columns]int8
	Turn     int8 // +1 moves first
	Win      int8 // cached result: -1, 0, +1
	LastMove Move
	HasMove  bool
	Pieces   int
}

// New returns an empty board with player +1 to move.
func New() *State {
	return &State{Turn: 1}
}

// LegalMoves returns the columns with an open top cell, in ascending order.
func (s *State) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if s.Board[0][c] == 0 {
			moves = append(moves, c)
		}
	}
	return moves
}

// Play drops a piece of the side to move into column col, the lowest empty
// row. It flips the turn, updates Pieces/LastMove/Win, and returns Win.
func (s *State) Play(col int) (int8, error) {
	if col < 0 || col >= Columns || s.Board[0][col] != 0 {
		return 0, errors.Wrapf(ErrIllegalMove, "column %d", col)
	}

	row := -1
	for r := Rows - 1; r >= 0; r-- {
		if s.Board[r][col] == 0 {
			row = r
			break
		}
	}

	s.Board[row][col] = s.Turn
	s.LastMove = Move{Row: row, Col: col}
	s.HasMove = true
	s.Pieces++
	s.Turn = -s.Turn
	s.Win = s.CheckWin()
	return s.Win, nil
}

// IsOver reports whether the game has a winner or no legal moves remain.
func (s *State) IsOver() bool {
	return s.Win != 0 || len(s.LegalMoves()) == 0
}

// CheckWin scans horizontally, vertically, and along both diagonals for four
// in a row and returns the winning side, or 0 if none.
func (s *State) CheckWin() int8 {
	b := &s.Board

	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-Connect; c++ {
			if v := b[r][c]; v != 0 && v == b[r][c+1] && v == b[r][c+2] && v == b[r][c+3] {
				return v
			}
		}
	}

	for r := 0; r <= Rows-Connect; r++ {
		for c := 0; c < Columns; c++ {
			if v := b[r][c]; v != 0 && v == b[r+1][c] && v == b[r+2][c] && v == b[r+3][c] {
				return v
			}
		}
	}

	for r := 0; r <= Rows-Connect; r++ {
		for c := 0; c <= Columns-Connect; c++ {
			if v := b[r][c]; v != 0 && v == b[r+1][c+1] && v == b[r+2][c+2] && v == b[r+3][c+3] {
				return v
			}
		}
	}

	for r := 0; r <= Rows-Connect; r++ {
		for c := Connect - 1; c < Columns; c++ {
			if v := b[r][c]; v != 0 && v == b[r+1][c-1] && v == b[r+2][c-2] && v == b[r+3][c-3] {
				return v
			}
		}
	}

	return 0
}

// Copy returns a deep copy; the board array copies by value.
func (s *State) Copy() *State {
	cp := *s
	return &cp
}
