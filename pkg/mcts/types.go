package mcts

import (
	"context"

	"github.com/connectfour-ai/go-connectfour/pkg/game"
)

// SeedGeneratorFnType produces the master seed each worker's RNG derives
// from, grounded on the teacher's SeedGeneratorFn convention — overridable so
// tests and reproducible benchmarks can pin it.
type SeedGeneratorFnType func() int64

// MCTSEngine is the external contract of spec.md §6: given a root position,
// pick a column and return the root children's visit-share distribution.
type MCTSEngine interface {
	// Search is total for any Iterations >= 1 on a non-terminal legal
	// position: at least one root child exists after the search completes.
	// It never mutates root.
	Search(ctx context.Context, root *game.State) (column int, prob []float64, err error)

	// WithListener attaches debug callbacks (see StatsListener) and returns
	// the same engine for chaining; callbacks only fire when EngineConfig.
	// Debug is set. cmd/connectfour's --debug flag uses this to print a
	// summary line via OnStop.
	WithListener(l *StatsListener) MCTSEngine
}

// EngineConfig configures an MCTSEngine. Threads <= 1 forces the
// single-threaded variant regardless of Iterations.
type EngineConfig struct {
	Iterations        int
	Exploration       float64
	Debug             bool
	Threads           int
	ParallelThreshold int // Iterations >= this picks the parallel variant
}
