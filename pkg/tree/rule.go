// Package tree implements the ID3-induced rule sets and bagging ensembles
// used to predict a Connect-Four move from a board row, grounded on
// DecisionTree/ID3Tree.py, Rule.py, Ruleset.py and Bootstrap_Aggregating.py.
package tree

// Op identifies the comparison a Premise tests.
type Op int

const (
	// OpEQ matches a discrete attribute against an exact value.
	OpEQ Op = iota
	// OpGE matches a continuous attribute's "at or above threshold" branch.
	OpGE
	// OpLT matches a continuous attribute's "below threshold" branch.
	OpLT
)

// Premise is one condition in a Rule's conjunction, naming the attribute by
// its index into the feature row.
type Premise struct {
	AttrIndex int
	Op        Op
	Value     float64
}

// satisfies reports whether row's value at the premise's attribute passes
// the premise's test.
func (p Premise) satisfies(row []float64) bool {
	v := row[p.AttrIndex]
	switch p.Op {
	case OpGE:
		return v >= p.Value
	case OpLT:
		return v < p.Value
	default:
		return v == p.Value
	}
}

// Rule is a conjunction of premises with a predicted column, the leaf of an
// ID3 decision path flattened to a single path-condition, per
// ID3Tree.build_rules.
type Rule struct {
	Premises   []Premise
	Conclusion int

	accuracy float64
}

// NewRule copies premises so later pruning of one rule cannot alias another.
func NewRule(premises []Premise, conclusion int) *Rule {
	return &Rule{Premises: append([]Premise(nil), premises...), Conclusion: conclusion}
}

// Predict returns (conclusion, true) if row satisfies every premise, or
// (0, false) the instant one premise fails — Rule.predict in the source.
func (r *Rule) Predict(row []float64) (int, bool) {
	for _, p := range r.Premises {
		if !p.satisfies(row) {
			return 0, false
		}
	}
	return r.Conclusion, true
}

// GetAccuracy computes the Laplace-smoothed accuracy of the rule over rows
// whose trailing column is the true label: (correct+1)/(matched+2), so a
// rule that never fires still reports a defined, non-zero accuracy.
func (r *Rule) GetAccuracy(rows [][]float64) float64 {
	var correct, matched int
	for _, row := range rows {
		pred, ok := r.Predict(row)
		if !ok {
			continue
		}
		matched++
		if float64(pred) == row[len(row)-1] {
			correct++
		}
	}
	return float64(correct+1) / float64(matched+2)
}

// Accuracy returns the cached accuracy from the last SetAccuracy call.
func (r *Rule) Accuracy() float64 {
	return r.accuracy
}

// SetAccuracy computes and caches the rule's accuracy over rows.
func (r *Rule) SetAccuracy(rows [][]float64) float64 {
	r.accuracy = r.GetAccuracy(rows)
	return r.accuracy
}
