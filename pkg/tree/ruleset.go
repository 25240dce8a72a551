package tree

import "math/rand"

// RuleSet trains an ID3Tree, flattens it to rules, and reduced-error-prunes
// those rules against a held-out split — grounded on DecisionTree/Ruleset.py.
type RuleSet struct {
	Attributes []Attribute
	Default    int

	Rules []*Rule

	tree      *ID3Tree
	trainData [][]float64
	pruneData [][]float64
}

// NewRuleSet splits rows 67/33 into train/prune sets after shuffling a local
// copy with rng — never the caller's slice in place, unlike the source's
// in-place random.shuffle(data).
func NewRuleSet(attributes []Attribute, def int, rows [][]float64, rng *rand.Rand) *RuleSet {
	shuffled := make([][]float64, len(rows))
	copy(shuffled, rows)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	split := int(float64(len(shuffled)) * 0.67)
	return &RuleSet{
		Attributes: attributes,
		Default:    def,
		trainData:  shuffled[:split],
		pruneData:  shuffled[split:],
	}
}

// Train builds the ID3 tree on the train split, extracts rules, seeds each
// rule's cached accuracy against the train split, then prunes.
func (rs *RuleSet) Train() {
	rs.tree = NewID3Tree(rs.Attributes, rs.Default)
	rs.tree.Train(rs.trainData)
	rs.Rules = rs.tree.BuildRules()

	for _, r := range rs.Rules {
		r.SetAccuracy(rs.trainData)
	}
	rs.prune()
}

// prune reduced-error-prunes each rule independently: pop premises off the
// end (LIFO) while the prune-set accuracy does not strictly decrease, then
// sort rules by descending prune-set accuracy — DecisionTree/Ruleset.py's
// prune().
func (rs *RuleSet) prune() {
	for _, r := range rs.Rules {
		attempts := len(r.Premises)
		for i := 0; i < attempts; i++ {
			if len(r.Premises) == 0 {
				break
			}
			before := r.SetAccuracy(rs.pruneData)
			removed := r.Premises[len(r.Premises)-1]
			r.Premises = r.Premises[:len(r.Premises)-1]

			after := r.GetAccuracy(rs.pruneData)
			if before > after {
				r.Premises = append(r.Premises, removed)
				break
			}
		}
	}

	// The source's sort key itself recomputes each rule's accuracy against
	// prune_data, so the final premise set (including any restored-on-break
	// premise) is always what ends up cached and sorted on.
	for _, r := range rs.Rules {
		r.SetAccuracy(rs.pruneData)
	}
	sortRulesByAccuracyDesc(rs.Rules)
}

func sortRulesByAccuracyDesc(rules []*Rule) {
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && rules[j].Accuracy() > rules[j-1].Accuracy(); j-- {
			rules[j], rules[j-1] = rules[j-1], rules[j]
		}
	}
}

// Predict returns the conclusion of the first rule (in pruned, sorted order)
// whose premises match row, and that rule's cached accuracy as a confidence.
// If no rule fires, it returns Default with confidence 0.
func (rs *RuleSet) Predict(row []float64) (int, float64) {
	for _, r := range rs.Rules {
		if pred, ok := r.Predict(row); ok {
			return pred, r.Accuracy()
		}
	}
	return rs.Default, 0
}

// FeatureImportance delegates to the underlying ID3Tree, evaluated over the
// split this RuleSet actually trained on.
func (rs *RuleSet) FeatureImportance(normalize bool) (map[string]float64, error) {
	if rs.tree == nil {
		return nil, ErrUntrainedModel
	}
	return rs.tree.FeatureImportance(normalize)
}
