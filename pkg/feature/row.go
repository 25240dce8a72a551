// Package feature converts a board position into the flat numeric row the
// decision-tree models consume, mirroring the board editor's model-input
// preparation in the original implementation.
package feature

import "github.com/connectfour-ai/go-connectfour/pkg/game"

// Width is the length of a row produced by Encode: two 42-cell planes plus
// the trailing [pieces, 0] pair.
const Width = game.Rows*game.Columns*2 + 2

// Encode flattens state into the mover-relative two-plane row: a 0/1 plane
// for the side to move's pieces, a 0/1 plane for the opponent's, then the
// total piece count and a trailing zero column. Always read board-relative
// to the side to move, so a trained model never has to learn "my color is
// sometimes -1".
func Encode(s *game.State) []float64 {
	row := make([]float64, Width)

	mover := s.Turn
	idx := 0
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Columns; c++ {
			if s.Board[r][c] == mover {
				row[idx] = 1
			}
			idx++
		}
	}
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Columns; c++ {
			if s.Board[r][c] == -mover {
				row[idx] = 1
			}
			idx++
		}
	}

	row[idx] = float64(s.Pieces)
	row[idx+1] = 0
	return row
}

// WidthLegacy is the length of a row produced by EncodeLegacy: one signed
// 42-cell plane plus the trailing [pieces, 0] pair.
const WidthLegacy = game.Rows*game.Columns + 2

// EncodeLegacy flattens state into a single signed plane (+1/-1/0 per cell,
// mover-relative) instead of Encode's two 0/1 planes. Kept for models trained
// on the earlier single-plane representation; Encode is the current default.
func EncodeLegacy(s *game.State) []float64 {
	row := make([]float64, WidthLegacy)

	mover := s.Turn
	idx := 0
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Columns; c++ {
			row[idx] = float64(s.Board[r][c] * mover)
			idx++
		}
	}

	row[idx] = float64(s.Pieces)
	row[idx+1] = 0
	return row
}
