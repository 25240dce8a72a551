package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesAscending(t *testing.T) {
	s := New()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.LegalMoves())
}

func TestPlayGravityAndTurnFlip(t *testing.T) {
	s := New()
	win, err := s.Play(3)
	require.NoError(t, err)
	assert.Equal(t, int8(0), win)
	assert.Equal(t, int8(1), s.Board[Rows-1][3])
	assert.Equal(t, int8(-1), s.Turn)
	assert.Equal(t, 1, s.Pieces)

	_, err = s.Play(3)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), s.Board[Rows-2][3])
}

func TestPlayIllegalMoveOnFullColumn(t *testing.T) {
	s := New()
	for i := 0; i < Rows; i++ {
		_, err := s.Play(0)
		require.NoError(t, err)
	}
	_, err := s.Play(0)
	require.ErrorIs(t, err, ErrIllegalMove)
}

// S1 — win scan: row 5 = [+1,+1,+1,+1,0,0,0].
func TestCheckWinHorizontal(t *testing.T) {
	s := New()
	s.Board[Rows-1] = [Columns]int8{1, 1, 1, 1, 0, 0, 0}
	assert.Equal(t, int8(1), s.CheckWin())
}

func TestCheckWinVertical(t *testing.T) {
	s := New()
	for r := Rows - 4; r < Rows; r++ {
		s.Board[r][2] = -1
	}
	assert.Equal(t, int8(-1), s.CheckWin())
}

func TestCheckWinDiagonals(t *testing.T) {
	s := New()
	for i := 0; i < 4; i++ {
		s.Board[i][i] = 1
	}
	assert.Equal(t, int8(1), s.CheckWin())

	s2 := New()
	for i := 0; i < 4; i++ {
		s2.Board[i][3-i] = -1
	}
	assert.Equal(t, int8(-1), s2.CheckWin())
}

func TestIsOverDraw(t *testing.T) {
	s := New()
	// Fill every column without completing a line: alternate pattern.
	pattern := [Rows][Columns]int8{
		{1, -1, 1, -1, 1, -1, 1},
		{1, -1, 1, -1, 1, -1, 1},
		{-1, 1, -1, 1, -1, 1, -1},
		{-1, 1, -1, 1, -1, 1, -1},
		{1, -1, 1, -1, 1, -1, 1},
		{-1, 1, -1, 1, -1, 1, -1},
	}
	s.Board = pattern
	assert.Equal(t, int8(0), s.CheckWin())
	assert.Empty(t, s.LegalMoves())
	assert.True(t, s.IsOver())
}

func TestCopyIsIndependent(t *testing.T) {
	s := New()
	_, _ = s.Play(0)
	cp := s.Copy()
	_, _ = cp.Play(1)
	assert.NotEqual(t, s.Board, cp.Board)
}

func TestValidateDetectsAllViolations(t *testing.T) {
	s := New()
	s.Board[Rows-1][0] = 2 // invalid value
	s.Board[0][1] = 1      // floating piece
	s.Board[Rows-1][2] = 1
	s.Board[Rows-2][2] = 1
	s.Board[Rows-3][2] = 1
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestValidateAcceptsLegalBoard(t *testing.T) {
	s := New()
	_, _ = s.Play(3)
	_, _ = s.Play(3)
	require.NoError(t, s.Validate())
}
