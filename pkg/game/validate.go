package game

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrInvalidBoard wraps every violation Validate found, for the interactive
// board-editor collaborator. It is never returned by Play or CheckWin.
var ErrInvalidBoard = errors.New("game: invalid board")

// Validate checks the invariants an externally-constructed board (e.g. from
// the board editor collaborator) must satisfy: a legal cell alphabet,
// gravity (no floating pieces), a balanced piece count, and a not-already-won
// game. Every violation found is collected, not just the first.
func (s *State) Validate() error {
	var errs *multierror.Error

	var p1, p2 int
	for c := 0; c < Columns; c++ {
		seenGap := false
		for r := Rows - 1; r >= 0; r-- {
			v := s.Board[r][c]
			switch v {
			case 0:
				seenGap = true
			case 1:
				p1++
				if seenGap {
					errs = multierror.Append(errs, fmt.Errorf("column %d: floating piece", c))
				}
			case -1:
				p2++
				if seenGap {
					errs = multierror.Append(errs, fmt.Errorf("column %d: floating piece", c))
				}
			default:
				errs = multierror.Append(errs, fmt.Errorf("cell (%d,%d): invalid value %d", r, c, v))
			}
		}
	}

	if d := p1 - p2; d > 1 || d < -1 {
		errs = multierror.Append(errs, fmt.Errorf("piece count imbalance: %d vs %d", p1, p2))
	}

	if s.CheckWin() != 0 {
		errs = multierror.Append(errs, fmt.Errorf("game is already over"))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, errs.ErrorOrNil())
	}
	return nil
}
