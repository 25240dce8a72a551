package mcts

import (
	"context"
	"math"
	"math/rand"

	"github.com/connectfour-ai/go-connectfour/pkg/game"
	"github.com/pkg/errors"
)

// ErrNoLegalMoves is returned when Search is asked to search a position with
// no legal moves at all. The single-threaded engine also returns it for a
// position that is already won, since no root child can be expanded there.
var ErrNoLegalMoves = errors.New("mcts: no legal moves at root")

// singleThreadEngine runs the four-phase MCTS loop (selection, expansion,
// simulation, backpropagation) against one goroutine-local tree, grounded on
// original_source/MCTS/MCTS.py's MonteCarlo_Single.
type singleThreadEngine struct {
	cfg      EngineConfig
	listener *StatsListener
}

// NewEngine returns the single- or root-parallel variant according to
// cfg.Threads and cfg.ParallelThreshold, per spec.md §4.C's preset sizing.
func NewEngine(cfg EngineConfig) MCTSEngine {
	if cfg.Exploration == 0 {
		cfg.Exploration = DefaultExploration
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = ParallelThreshold
	}
	if cfg.Threads > 1 && cfg.Iterations >= cfg.ParallelThreshold {
		return &parallelEngine{cfg: cfg}
	}
	return &singleThreadEngine{cfg: cfg}
}

// WithListener attaches debug callbacks; only meaningful when cfg.Debug.
func (e *singleThreadEngine) WithListener(l *StatsListener) MCTSEngine {
	e.listener = l
	return e
}

func (e *singleThreadEngine) Search(ctx context.Context, root *game.State) (int, []float64, error) {
	if len(root.LegalMoves()) == 0 {
		return 0, nil, ErrNoLegalMoves
	}

	limits := DefaultLimits().SetIterations(e.cfg.Iterations).SetExploration(e.cfg.Exploration)
	limiter := NewLimiter()
	limiter.SetLimits(limits)
	limiter.SetContext(ctx)
	limiter.Reset()

	rng := rand.New(rand.NewSource(SeedGeneratorFn()))
	rootNode := newNode(root.Copy(), nil)

	for limiter.Tick() {
		leaf := selection(rootNode, e.cfg.Exploration)
		expanded := expand(leaf, rng)
		reward := simulate(expanded.State.Copy(), -expanded.State.Turn, rng, math.MaxInt32)
		backpropagate(expanded, reward)

		if e.cfg.Debug && e.listener != nil && e.listener.onCycle != nil {
			e.listener.onCycle(toListenerStats(rootNode, limiter))
		}
	}

	if e.cfg.Debug && e.listener != nil && e.listener.onStop != nil {
		e.listener.onStop(toListenerStats(rootNode, limiter))
	}

	return bestMoveAndDistribution(rootNode)
}

// selection walks from node down to a leaf via UCB1, stopping at the first
// node that is terminal or not yet fully expanded.
func selection(node *Node, c float64) *Node {
	for !node.IsTerminal() && node.FullyExplored() && len(node.Children) > 0 {
		node = bestChildUCB1(node, c)
	}
	return node
}

// bestChildUCB1 picks the child maximizing exploit + c*sqrt(ln(N)/n), per
// spec.md §6's UCB1 formula. Ties go to the child with more visits, then to
// the first one seen.
func bestChildUCB1(node *Node, c float64) *Node {
	var best *Node
	bestScore := math.Inf(-1)
	lnParent := math.Log(float64(node.Visits))

	for _, child := range node.Children {
		exploit := child.Reward / float64(child.Visits)
		explore := c * math.Sqrt(lnParent/float64(child.Visits))
		score := exploit + explore
		if score > bestScore || (best != nil && score == bestScore && child.Visits > best.Visits) {
			bestScore = score
			best = child
		}
	}
	return best
}

// expand adds one untried child of node (uniformly chosen among columns with
// no existing child) and returns it; if node is terminal or already fully
// expanded, node itself is returned unchanged.
func expand(node *Node, rng *rand.Rand) *Node {
	if node.IsTerminal() {
		return node
	}

	legal := node.State.LegalMoves()
	tried := make(map[int]bool, len(node.ChildrenMove))
	for _, m := range node.ChildrenMove {
		tried[m] = true
	}

	untried := make([]int, 0, len(legal))
	for _, m := range legal {
		if !tried[m] {
			untried = append(untried, m)
		}
	}
	if len(untried) == 0 {
		return node
	}

	col := untried[rng.Intn(len(untried))]
	next := node.State.Copy()
	_, _ = next.Play(col)
	return node.AddChild(next, col)
}

// simulate plays uniformly random legal moves from state until the game ends
// or depthCap plies have elapsed, then scores the result from mover's point
// of view: +1 win, -1 loss, 0 draw/unfinished. mover is the player who made
// the move into state's originating node (i.e. the opponent of state.Turn,
// the side left to move), matching original_source/MCTS/MCTS.py's
// simulation()/backpropagation convention where a node scores positively
// when its *creator* wins. Grounded on MCTS.py's simulation() for the
// unbounded case and MCTS_optimized.py's 20-ply cap for the parallel case
// (depthCap == math.MaxInt32 reproduces the unbounded single-threaded
// variant).
func simulate(state *game.State, mover int8, rng *rand.Rand, depthCap int) float64 {
	for plies := 0; plies < depthCap && !state.IsOver(); plies++ {
		legal := state.LegalMoves()
		col := legal[rng.Intn(len(legal))]
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

// backpropagate walks from node to the root, flipping the reward's sign at
// every step (spec.md §6: each ply is scored from the mover-to-move-there's
// perspective, which alternates with every level of the tree).
func backpropagate(node *Node, reward float64) {
	sign := 1.0
	for n := node; n != nil; n = n.Parent {
		n.Visits++
		n.Reward += sign * reward
		sign = -sign
	}
}

// bestChildByVisits returns root's most-visited child, the tie-break UCB1
// itself doesn't resolve (original_source/MCTS/MCTS.py's best_child()).
func bestChildByVisits(root *Node) *Node {
	var best *Node
	for _, child := range root.Children {
		if best == nil || child.Visits > best.Visits {
			best = child
		}
	}
	return best
}

func childIndex(root *Node, child *Node) int {
	for i, c := range root.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// bestMoveAndDistribution reduces the root's children to spec.md §6's
// contract: the most-visited column, and the visit-share distribution over
// every legal column (zero for columns never expanded).
func bestMoveAndDistribution(root *Node) (int, []float64, error) {
	best := bestChildByVisits(root)
	if best == nil {
		return 0, nil, ErrNoLegalMoves
	}

	legal := root.State.LegalMoves()
	prob := make([]float64, len(legal))
	colIndex := make(map[int]int, len(legal))
	for i, m := range legal {
		colIndex[m] = i
	}

	var total float64
	for _, child := range root.Children {
		total += float64(child.Visits)
	}

	for i, child := range root.Children {
		col := root.ChildrenMove[i]
		if idx, ok := colIndex[col]; ok && total > 0 {
			prob[idx] = float64(child.Visits) / total
		}
	}

	return root.ChildrenMove[childIndex(root, best)], prob, nil
}
