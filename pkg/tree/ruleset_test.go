package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xorRows(n int, rng *rand.Rand) [][]float64 {
	rows := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		a := float64(rng.Intn(2))
		b := float64(rng.Intn(2))
		label := 0.0
		if a != b {
			label = 1
		}
		rows = append(rows, []float64{a, b, label})
	}
	return rows
}

// S5 — a trained, pruned rule set predicts better than chance on data the
// rules were never trained or pruned against.
func TestRuleSetTrainProducesUsableRules(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	attrs := []Attribute{{Name: "a", Index: 0}, {Name: "b", Index: 1}}
	rows := xorRows(200, rng)

	rs := NewRuleSet(attrs, ErrorClass, rows, rng)
	rs.Train()

	require.NotEmpty(t, rs.Rules)

	holdout := xorRows(50, rng)
	var correct int
	for _, row := range holdout {
		pred, _ := rs.Predict(row)
		if float64(pred) == row[2] {
			correct++
		}
	}
	assert.Greater(t, correct, len(holdout)/2)
}

func TestRuleSetPredictReturnsDefaultWhenNoRuleMatches(t *testing.T) {
	rs := &RuleSet{
		Default: -1,
		Rules:   []*Rule{NewRule([]Premise{{AttrIndex: 0, Op: OpGE, Value: 5}}, 1)},
	}

	pred, conf := rs.Predict([]float64{1})
	assert.Equal(t, -1, pred)
	assert.Equal(t, 0.0, conf)
}

func TestRuleSetFeatureImportanceRequiresTraining(t *testing.T) {
	attrs := []Attribute{{Name: "a", Index: 0}}
	rs := NewRuleSet(attrs, -1, [][]float64{{0, 0}}, rand.New(rand.NewSource(1)))
	_, err := rs.FeatureImportance(true)
	require.ErrorIs(t, err, ErrUntrainedModel)
}

func TestRuleSetShuffleDoesNotMutateCaller(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	attrs := []Attribute{{Name: "a", Index: 0}}
	original := [][]float64{{0, 0}, {0, 0}, {1, 1}, {1, 1}}
	snapshot := make([][]float64, len(original))
	copy(snapshot, original)

	_ = NewRuleSet(attrs, -1, original, rng)
	assert.Equal(t, snapshot, original)
}
