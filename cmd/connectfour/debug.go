package main

import (
	"github.com/connectfour-ai/go-connectfour/internal/logx"
	"github.com/connectfour-ai/go-connectfour/pkg/mcts"
)

// attachDebugListener wires a StatsListener's OnStop hook into logx, giving
// --debug a concrete summary line per search instead of only the ambient
// logger output. Returns engine unchanged when debug is off.
func attachDebugListener(engine mcts.MCTSEngine, debug bool) mcts.MCTSEngine {
	if !debug {
		return engine
	}

	log := logx.With("mcts")
	listener := (&mcts.StatsListener{}).OnStop(func(s mcts.ListenerTreeStats) {
		log.Debug("search stopped",
			"cycles", s.Cycles,
			"time_ms", s.TimeMs,
			"best_move", s.Line.BestMove,
			"visits", s.Line.Visits,
			"eval", s.Line.Eval,
			"stop_reason", s.StopReason.String(),
		)
	})
	return engine.WithListener(listener)
}
