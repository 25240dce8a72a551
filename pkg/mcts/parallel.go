package mcts

import (
	"context"
	"math/rand"
	"sync"

	"github.com/connectfour-ai/go-connectfour/pkg/game"
)

// parallelEngine splits the iteration budget across cfg.Threads goroutines,
// each growing its own disjoint, goroutine-local tree — spec.md §5's
// requirement that a worker "reads no shared mutable memory during search" —
// then merges the per-worker root statistics. Grounded on
// original_source/MCTS/MCTS_optimized.py's worker_mcts/ProcessPoolExecutor
// fan-out, realized with goroutines instead of OS processes.
type parallelEngine struct {
	cfg      EngineConfig
	listener *StatsListener
}

// WithListener attaches debug callbacks; only meaningful when cfg.Debug. The
// root-parallel engine has no single shared tree to sample mid-search, so
// only OnStop fires (once, with the merged root statistics) — OnCycle is
// accepted but never invoked.
func (e *parallelEngine) WithListener(l *StatsListener) MCTSEngine {
	e.listener = l
	return e
}

// workerResult is one worker's root-level findings: per-column accumulated
// reward and visit count, keyed by column so merging doesn't depend on
// ChildrenMove order matching across workers.
type workerResult struct {
	reward [game.Columns]float64
	visits [game.Columns]uint64
}

func (e *parallelEngine) Search(ctx context.Context, root *game.State) (int, []float64, error) {
	legal := root.LegalMoves()
	if len(legal) == 0 {
		return 0, nil, ErrNoLegalMoves
	}

	timer := _NewTimer()

	threads := max(e.cfg.Threads, 1)
	perWorker := e.cfg.Iterations / threads
	if perWorker == 0 {
		perWorker = 1
	}

	results := make([]workerResult, threads)
	masterSeed := SeedGeneratorFn()

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func(w int) {
			defer wg.Done()
			results[w] = e.runWorker(ctx, root, perWorker, masterSeed+int64(w))
		}(w)
	}
	wg.Wait()

	var merged workerResult
	for _, r := range results {
		for c := 0; c < game.Columns; c++ {
			merged.reward[c] += r.reward[c]
			merged.visits[c] += r.visits[c]
		}
	}

	col, prob, err := mergeBestMoveAndDistribution(legal, merged)

	if err == nil && e.cfg.Debug && e.listener != nil && e.listener.onStop != nil {
		e.listener.onStop(mergedListenerStats(merged, col, threads*perWorker, timer))
	}

	return col, prob, err
}

// mergedListenerStats summarizes the merged root statistics of a finished
// parallel search the same way toListenerStats summarizes a single-tree
// search, for StatsListener.OnStop.
func mergedListenerStats(merged workerResult, bestCol, totalIterations int, timer *_Timer) ListenerTreeStats {
	line := SearchLine{BestMove: bestCol, Visits: merged.visits[bestCol]}
	if merged.visits[bestCol] > 0 {
		line.Eval = merged.reward[bestCol] / float64(merged.visits[bestCol])
	}

	return ListenerTreeStats{
		Cycles:     totalIterations,
		TimeMs:     timer.Deltatime(),
		Line:       line,
		StopReason: StopIterations,
	}
}

// runWorker grows a private tree for iterations rollouts (capped rollout
// depth, center-biased random play during simulation, as in
// MCTS_optimized.py) and returns its root-level column statistics.
func (e *parallelEngine) runWorker(ctx context.Context, root *game.State, iterations int, seed int64) workerResult {
	rng := rand.New(rand.NewSource(seed))
	rootNode := newNode(root.Copy(), nil)

	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetIterations(iterations).SetExploration(e.cfg.Exploration))
	limiter.SetContext(ctx)
	limiter.Reset()

	for limiter.Tick() {
		leaf := selection(rootNode, e.cfg.Exploration)
		expanded := expand(leaf, rng)
		reward := simulateBiased(expanded.State.Copy(), -expanded.State.Turn, rng)
		backpropagate(expanded, reward)
	}

	var out workerResult
	for i, child := range rootNode.Children {
		col := rootNode.ChildrenMove[i]
		out.reward[col] += child.Reward
		out.visits[col] += child.Visits
	}
	return out
}

// simulateBiased is the parallel-worker rollout policy: center-column-biased
// random play, capped at RolloutDepthCap plies (original_source's
// MCTS_optimized.simulation()). An unfinished rollout scores a draw. mover
// is the player who made the move into state's originating node, same
// convention as simulate in engine.go.
func simulateBiased(state *game.State, mover int8, rng *rand.Rand) float64 {
	for plies := 0; plies < RolloutDepthCap && !state.IsOver(); plies++ {
		legal := state.LegalMoves()
		col := pickBiasedColumn(legal, rng)
		_, _ = state.Play(col)
	}

	switch {
	case state.Win == mover:
		return 1
	case state.Win == -mover:
		return -1
	default:
		return 0
	}
}

// pickBiasedColumn prefers CenterBiasColumn whenever it is legal, otherwise
// falls back to uniform random choice among the legal columns.
func pickBiasedColumn(legal []int, rng *rand.Rand) int {
	for _, c := range legal {
		if c == CenterBiasColumn {
			return c
		}
	}
	return legal[rng.Intn(len(legal))]
}

// mergeBestMoveAndDistribution reduces merged per-column worker stats to the
// most-visited column and the visit-share distribution over legal columns.
func mergeBestMoveAndDistribution(legal []int, merged workerResult) (int, []float64, error) {
	var total float64
	for _, c := range legal {
		total += float64(merged.visits[c])
	}

	prob := make([]float64, len(legal))
	best, bestVisits := legal[0], uint64(0)
	for i, c := range legal {
		if total > 0 {
			prob[i] = float64(merged.visits[c]) / total
		}
		if merged.visits[c] > bestVisits {
			bestVisits = merged.visits[c]
			best = c
		}
	}

	return best, prob, nil
}
