package mcts

// SearchLine summarizes the current best line at the root, the concrete
// (move int) counterpart of the teacher's generic SearchLine[T].
type SearchLine struct {
	BestMove int
	Visits   uint64
	Eval     float64
	Terminal bool
}

// ListenerTreeStats is the snapshot handed to StatsListener callbacks,
// grounded on the teacher's ListenerTreeStats but reduced to what a
// single-root-node search can report without a generic PV walk.
type ListenerTreeStats struct {
	Cycles     int
	TimeMs     int
	Line       SearchLine
	StopReason StopReason
}

func toListenerStats(root *Node, limiter *Limiter) ListenerTreeStats {
	line := SearchLine{Terminal: root.IsTerminal()}
	if best := bestChildByVisits(root); best != nil {
		idx := childIndex(root, best)
		line.BestMove = root.ChildrenMove[idx]
		line.Visits = best.Visits
		line.Eval = best.Reward / float64(best.Visits)
	}

	return ListenerTreeStats{
		Cycles:     int(limiter.Done()),
		TimeMs:     int(limiter.Elapsed()),
		Line:       line,
		StopReason: limiter.StopReason(),
	}
}

// ListenerFunc receives a tree-statistics snapshot.
type ListenerFunc func(ListenerTreeStats)

// StatsListener offers cycle/stop hooks into a running Search, in the
// teacher's builder style; cmd/connectfour's --debug flag attaches one via
// MCTSEngine.WithListener and uses OnStop to print a summary line. OnCycle
// only fires for the single-threaded engine, which has one tree to sample
// mid-search; the root-parallel engine has no such shared tree and only
// ever calls OnStop.
type StatsListener struct {
	onCycle ListenerFunc
	onStop  ListenerFunc
}

// OnCycle attaches a callback invoked after every completed rollout. This
// noticeably slows the search (one snapshot per iteration), so it is meant
// for debugging only.
func (l *StatsListener) OnCycle(f ListenerFunc) *StatsListener {
	l.onCycle = f
	return l
}

// OnStop attaches a callback invoked once, when the search loop exits.
func (l *StatsListener) OnStop(f ListenerFunc) *StatsListener {
	l.onStop = f
	return l
}
