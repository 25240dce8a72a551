package feature

import (
	"testing"

	"github.com/connectfour-ai/go-connectfour/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestEncodeWidthAndPieceCount(t *testing.T) {
	s := game.New()
	_, _ = s.Play(3)
	_, _ = s.Play(2)

	row := Encode(s)
	assert.Len(t, row, Width)
	assert.Equal(t, float64(2), row[Width-2])
	assert.Equal(t, float64(0), row[Width-1])
}

func TestEncodeIsMoverRelative(t *testing.T) {
	s := game.New()
	_, _ = s.Play(3) // +1 played, now -1 to move

	row := Encode(s)

	moverPlaneSum, oppPlaneSum := 0.0, 0.0
	for i := 0; i < game.Rows*game.Columns; i++ {
		moverPlaneSum += row[i]
	}
	for i := game.Rows * game.Columns; i < 2*game.Rows*game.Columns; i++ {
		oppPlaneSum += row[i]
	}

	assert.Equal(t, 0.0, moverPlaneSum, "mover (-1) has placed no pieces of their own color yet")
	assert.Equal(t, 1.0, oppPlaneSum, "the +1 piece just played belongs to the opponent-to-the-mover")
}

func TestEncodeLegacySignedPlane(t *testing.T) {
	s := game.New()
	_, _ = s.Play(3)

	row := EncodeLegacy(s)
	assert.Len(t, row, WidthLegacy)
	assert.Equal(t, -1.0, row[(game.Rows-1)*game.Columns+3])
}
