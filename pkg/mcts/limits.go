package mcts

import (
	"encoding/json"
	"strings"
)

// Limits bounds a single Search call. Unlike the teacher library's Limits,
// this carries no depth/node/byte-size hierarchy: spec.md's stopping
// condition is a fixed iteration budget per worker, optionally cut short by
// a cancelled context.
type Limits struct {
	Iterations  int
	Exploration float64
	NThreads    int
	Debug       bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

// DefaultLimits returns sqrt(2) exploration, a single thread and a thousand
// iterations; the engines replace Iterations and Exploration with the values
// from their EngineConfig.
func DefaultLimits() *Limits {
	return &Limits{
		Iterations:  1000,
		Exploration: DefaultExploration,
		NThreads:    1,
		Debug:       false,
	}
}

// SetIterations sets the total rollout budget handed to the engine.
func (l *Limits) SetIterations(n int) *Limits {
	l.Iterations = n
	return l
}

// SetExploration overrides the UCB1 constant c.
func (l *Limits) SetExploration(c float64) *Limits {
	l.Exploration = c
	return l
}

// SetThreads records the number of root-parallel workers, at least 1.
// NewEngine picks its variant from EngineConfig.Threads; this field does not
// affect that choice.
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}

// SetDebug records the debug flag. StatsListener callbacks are governed by
// EngineConfig.Debug; the engines do not read this field.
func (l *Limits) SetDebug(debug bool) *Limits {
	l.Debug = debug
	return l
}
