package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S4 — XOR identity: a tree trained on XOR(a,b) must reproduce it exactly on
// every one of the four training rows.
func TestID3TreeLearnsXORIdentity(t *testing.T) {
	attrs := []Attribute{{Name: "a", Index: 0}, {Name: "b", Index: 1}}
	rows := [][]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	tr := NewID3Tree(attrs, ErrorClass)
	tr.Train(rows)

	for _, row := range rows {
		pred, _ := tr.Predict(row)
		assert.Equal(t, int(row[2]), pred)
	}
}

func TestID3TreeBuildRulesCoverAllLeaves(t *testing.T) {
	attrs := []Attribute{{Name: "a", Index: 0}, {Name: "b", Index: 1}}
	rows := [][]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	tr := NewID3Tree(attrs, ErrorClass)
	tr.Train(rows)
	rules := tr.BuildRules()

	require.NotEmpty(t, rules)
	for _, row := range rows {
		var matched bool
		for _, r := range rules {
			if pred, ok := r.Predict(row); ok {
				assert.Equal(t, int(row[2]), pred)
				matched = true
				break
			}
		}
		assert.True(t, matched, "every training row must be covered by some rule")
	}
}

func TestID3TreeContinuousSplit(t *testing.T) {
	attrs := []Attribute{{Name: "pieces", Index: 0, Continuous: true}}
	rows := [][]float64{
		{1, 0},
		{2, 0},
		{10, 1},
		{11, 1},
	}

	tr := NewID3Tree(attrs, ErrorClass)
	tr.Train(rows)

	pred, _ := tr.Predict([]float64{1, 0})
	assert.Equal(t, 0, pred)
	pred, _ = tr.Predict([]float64{11, 0})
	assert.Equal(t, 1, pred)
}

func TestFeatureImportanceSumsToOne(t *testing.T) {
	attrs := []Attribute{{Name: "a", Index: 0}, {Name: "b", Index: 1}}
	rows := [][]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	tr := NewID3Tree(attrs, ErrorClass)
	tr.Train(rows)
	importance, err := tr.FeatureImportance(true)
	require.NoError(t, err)

	var total float64
	for _, v := range importance {
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestFeatureImportanceRequiresTraining(t *testing.T) {
	tr := NewID3Tree([]Attribute{{Name: "a", Index: 0}}, ErrorClass)
	_, err := tr.FeatureImportance(true)
	require.ErrorIs(t, err, ErrUntrainedModel)
}
