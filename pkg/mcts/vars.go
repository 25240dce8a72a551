package mcts

import (
	"math"
	"time"
)

// DefaultExploration is the UCB1 constant c from spec.md §6 ("exploration ≈
// sqrt(2)"), the theoretical value for rewards in [0,1].
const DefaultExploration = math.Sqrt2

// RolloutDepthCap bounds the parallel-worker rollout policy at 20 plies
// (spec.md §6 fixed constants); beyond the cap an unfinished rollout scores 0.
const RolloutDepthCap = 20

// CenterBiasColumn is the column the parallel rollout policy prefers
// whenever it is legal (Connect-Four's well known center-column strength).
const CenterBiasColumn = 3

// ParallelThreshold is the default iteration count at and above which
// NewEngine picks the parallel variant, matching spec.md §4.C's "medium"
// preset boundary (see pkg/cfengine for the named easy/medium/hard presets).
const ParallelThreshold = 4000

// SeedGeneratorFn produces the master seed each worker's RNG derives from.
// Overridable (e.g. in tests) for reproducible searches, grounded on the
// teacher's SeedGeneratorFn/SetSeedGeneratorFn convention.
var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// SetSeedGeneratorFn overrides the master seed source.
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
