package tree

import (
	"fmt"

	"github.com/connectfour-ai/go-connectfour/pkg/feature"
)

// DefaultAttributes describes feature.Encode's row layout for the learner:
// 84 discrete two-plane cell indicators, one continuous piece-count column,
// and a final trailing column (always 0 on inference rows) reserved for the
// training label — that last column is never itself an attribute.
func DefaultAttributes() []Attribute {
	cells := feature.Width - 2 // two planes, excluding [pieces, label]
	attrs := make([]Attribute, 0, cells+1)
	for i := 0; i < cells; i++ {
		attrs = append(attrs, Attribute{Name: fmt.Sprintf("cell_%d", i), Index: i})
	}
	attrs = append(attrs, Attribute{Name: "pieces", Index: cells, Continuous: true})
	return attrs
}
