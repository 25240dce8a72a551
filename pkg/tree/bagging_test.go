package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6 — bagging consensus: the ensemble's weighted vote should predict a
// simple separable task better than chance on fresh rows.
func TestBaggingEnsembleConsensus(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	attrs := []Attribute{{Name: "a", Index: 0}, {Name: "b", Index: 1}}
	rows := xorRows(300, rng)

	ens := NewBaggingEnsemble(attrs, ErrorClass, rows)
	ens.Train(rng)

	holdout := xorRows(60, rng)
	var correct int
	for _, row := range holdout {
		pred, _ := ens.Predict(row)
		if float64(pred) == row[2] {
			correct++
		}
	}
	assert.Greater(t, correct, len(holdout)/2)
}

func TestBaggingEnsembleTrainMetricsRequiresTraining(t *testing.T) {
	ens := NewBaggingEnsemble(nil, -1, nil)
	_, err := ens.TrainMetrics()
	require.ErrorIs(t, err, ErrUntrainedModel)
}

func TestBaggingEnsembleFeatureImportanceNormalizes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	attrs := []Attribute{{Name: "a", Index: 0}, {Name: "b", Index: 1}}
	rows := xorRows(120, rng)

	ens := NewBaggingEnsemble(attrs, ErrorClass, rows)
	ens.Train(rng)

	importance, err := ens.FeatureImportance(true)
	require.NoError(t, err)

	var total float64
	for _, v := range importance {
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-6)

	ranked, err := ens.RankedFeatureImportance()
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}
