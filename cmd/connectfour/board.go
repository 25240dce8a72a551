package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/connectfour-ai/go-connectfour/pkg/game"
)

var termProfile = termenv.ColorProfile()

// renderBoard prints s with player +1 pieces in red and player -1 pieces in
// yellow, the terminal-UI counterpart of the teacher's examples rendering
// their own boards directly with fmt — termenv supplies the color instead of
// raw ANSI escapes.
func renderBoard(s *game.State) string {
	var b strings.Builder
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Columns; c++ {
			b.WriteString(renderCell(s.Board[r][c]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for c := 0; c < game.Columns; c++ {
		b.WriteString(fmt.Sprintf("%d ", c))
	}
	b.WriteString("\n")
	return b.String()
}

func renderCell(v int8) string {
	switch v {
	case 1:
		return termenv.String("●").Foreground(termProfile.Color("1")).String()
	case -1:
		return termenv.String("●").Foreground(termProfile.Color("3")).String()
	default:
		return termenv.String("·").Faint().String()
	}
}
