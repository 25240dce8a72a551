package mcts

import (
	"context"
	"sync/atomic"
)

// StopReason records why a Search loop exited.
type StopReason int

const (
	StopNone StopReason = iota
	// StopInterrupt covers both an explicit SetStop(true) and context
	// cancellation — spec.md §5 treats both as cooperative, best-effort exits.
	StopInterrupt
	// StopIterations fires once the worker has spent its iteration budget.
	StopIterations
)

func (sr StopReason) String() string {
	switch sr {
	case StopInterrupt:
		return "Interrupt"
	case StopIterations:
		return "Iterations"
	default:
		return "None"
	}
}

// Limiter tracks the iteration budget and cancellation state for a single
// Search call, grounded on the teacher's Limiter/SetContext/Stop pattern but
// stripped of the memory/depth/cycles hierarchy spec.md has no use for: the
// only stopping conditions here are "spent the budget" and "context done".
type Limiter struct {
	limits *Limits
	Timer  *_Timer
	done   uint64
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

// NewLimiter builds a Limiter bound to background context and default limits;
// callers set both via SetLimits/SetContext before Reset.
func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

// Reset clears stop/iteration state for a new Search call.
func (l *Limiter) Reset() {
	l.Timer.Reset()
	l.stop.Store(false)
	l.done = 0
	l.reason = StopNone
}

// SetContext installs the context whose cancellation Stop observes.
func (l *Limiter) SetContext(ctx context.Context) {
	if ctx != nil {
		l.ctx = ctx
	}
}

// SetStop forces the next Stop() check to report true.
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Stop reports whether the search loop must exit: either SetStop(true) was
// called, or the bound context was cancelled.
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

// SetLimits installs the limits this Limiter enforces.
func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

// Limits returns the limits this Limiter enforces.
func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed returns milliseconds since the last Reset.
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

// Tick is called before each rollout: it reports whether another rollout may
// run and, if so, counts it (the mirror of the teacher's Ok, inverted for
// readability at the call site: "tick and keep going" reads better than
// "check and continue"). The first rollout always runs, even under a
// cancelled context, so a Search always ends with at least one root child.
func (l *Limiter) Tick() bool {
	if l.done > 0 && l.Stop() {
		l.reason = StopInterrupt
		return false
	}
	if l.limits.Iterations > 0 && l.done >= uint64(l.limits.Iterations) {
		l.reason = StopIterations
		return false
	}
	l.done++
	return true
}

// StopReason reports why the last Search loop exited; valid after Tick first
// returns false.
func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// Done returns the number of rollouts completed so far.
func (l *Limiter) Done() uint64 {
	return l.done
}
