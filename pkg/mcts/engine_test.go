package mcts

import (
	"context"
	"math/rand"
	"testing"

	"github.com/connectfour-ai/go-connectfour/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	SetSeedGeneratorFn(func() int64 { return 42 })
}

// S3 — three in a row with an open fourth cell: the engine must find the
// immediate winning column.
func TestSearchFindsForcedWin(t *testing.T) {
	s := game.New()
	s.Board[game.Rows-1] = [game.Columns]int8{1, 1, 1, 0, 0, 0, 0}
	s.Turn = 1

	engine := NewEngine(EngineConfig{Iterations: 2000, Exploration: DefaultExploration, Threads: 1})
	col, prob, err := engine.Search(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, 3, col)
	assert.Len(t, prob, len(s.LegalMoves()))
}

func TestSearchIsTotalForSingleLegalMove(t *testing.T) {
	s := game.New()
	// Fill columns 1-6 row by row, reversing direction every two rows, so no
	// line of four forms and only column 0 stays open.
	for r := 0; r < game.Rows; r++ {
		for i := 1; i < game.Columns; i++ {
			c := i
			if (r/2)%2 == 1 {
				c = game.Columns - i
			}
			_, _ = s.Play(c)
		}
	}

	engine := NewEngine(EngineConfig{Iterations: 50, Threads: 1})
	col, _, err := engine.Search(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 0, col)
}

func TestSearchErrorsOnFinishedGame(t *testing.T) {
	s := game.New()
	s.Board[game.Rows-1] = [game.Columns]int8{1, 1, 1, 1, -1, -1, -1}
	s.Win = s.CheckWin()

	engine := NewEngine(EngineConfig{Iterations: 10, Threads: 1})
	_, _, err := engine.Search(context.Background(), s)
	require.Error(t, err)
}

func TestSearchRespectsContextCancellation(t *testing.T) {
	s := game.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(EngineConfig{Iterations: 100000, Threads: 1})
	col, _, err := engine.Search(ctx, s)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, col, 0)
}

func TestParallelEngineMergesWorkerStats(t *testing.T) {
	s := game.New()
	s.Board[game.Rows-1] = [game.Columns]int8{-1, 1, 1, 1, 0, 0, 0}
	s.Turn = 1

	engine := NewEngine(EngineConfig{Iterations: 8000, Threads: 4, ParallelThreshold: 1})
	col, prob, err := engine.Search(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, 4, col)
	var sum float64
	for _, p := range prob {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// simulate's mover argument is the player who made the move into the state
// passed in, not state.Turn (the side left to move) — a node must score
// positively when its creator wins, per original_source/MCTS/MCTS.py's
// simulation()/backpropagation convention.
func TestSimulateScoresCreatorPerspective(t *testing.T) {
	s := game.New()
	s.Board[game.Rows-1] = [game.Columns]int8{1, 1, 1, 1, 0, 0, 0}
	s.Win = s.CheckWin()
	s.Turn = -1

	rng := rand.New(rand.NewSource(1))
	reward := simulate(s.Copy(), -s.Turn, rng, 20)
	assert.Equal(t, 1.0, reward)

	reward = simulate(s.Copy(), s.Turn, rng, 20)
	assert.Equal(t, -1.0, reward)
}

func TestWithListenerFiresOnCycleAndOnStop(t *testing.T) {
	s := game.New()
	s.Board[game.Rows-1] = [game.Columns]int8{1, 1, 1, 0, 0, 0, 0}
	s.Turn = 1

	var cycles int
	var stopped bool
	listener := (&StatsListener{}).
		OnCycle(func(ListenerTreeStats) { cycles++ }).
		OnStop(func(ListenerTreeStats) { stopped = true })

	engine := NewEngine(EngineConfig{Iterations: 50, Threads: 1, Debug: true}).WithListener(listener)
	_, _, err := engine.Search(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, 50, cycles)
	assert.True(t, stopped)
}

func TestParallelEngineWithListenerFiresOnStopOnly(t *testing.T) {
	s := game.New()

	var cycles int
	var stopped bool
	listener := (&StatsListener{}).
		OnCycle(func(ListenerTreeStats) { cycles++ }).
		OnStop(func(ListenerTreeStats) { stopped = true })

	engine := NewEngine(EngineConfig{Iterations: 8000, Threads: 4, ParallelThreshold: 1, Debug: true}).WithListener(listener)
	_, _, err := engine.Search(context.Background(), s)

	require.NoError(t, err)
	assert.Zero(t, cycles)
	assert.True(t, stopped)
}

func TestBackpropagateAlternatesSign(t *testing.T) {
	root := newNode(game.New(), nil)
	child := root.AddChild(game.New(), 3)
	grandchild := child.AddChild(game.New(), 2)

	backpropagate(grandchild, 1)

	assert.Equal(t, uint64(2), grandchild.Visits)
	assert.Equal(t, 1.0, grandchild.Reward)
	assert.Equal(t, uint64(2), child.Visits)
	assert.Equal(t, -1.0, child.Reward)
	assert.Equal(t, uint64(2), root.Visits)
	assert.Equal(t, 1.0, root.Reward)
}
