package selfplay

import (
	"context"
	"testing"

	"github.com/connectfour-ai/go-connectfour/pkg/mcts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	mcts.SetSeedGeneratorFn(func() int64 { return 99 })
}

func TestPlayOneRecordsEveryPly(t *testing.T) {
	engine := mcts.NewEngine(mcts.EngineConfig{Iterations: 200, Threads: 1})
	rec := NewRecorder(engine)

	game, err := rec.PlayOne(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, game.Rows)

	for i, row := range game.Rows {
		assert.Equal(t, game.ID, row.GameID)
		assert.Equal(t, i, row.Ply)
		assert.GreaterOrEqual(t, row.Label, 0)
	}
}

func TestRunManyDistributesGamesAcrossWorkers(t *testing.T) {
	engine := mcts.NewEngine(mcts.EngineConfig{Iterations: 100, Threads: 1})

	games, stats, err := RunMany(context.Background(), engine, 6, 3)
	require.NoError(t, err)
	assert.Len(t, games, 6)
	assert.Equal(t, 6, stats.Total())
}
