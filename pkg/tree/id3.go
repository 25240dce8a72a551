package tree

import (
	"math"
	"sort"
)

// ErrorClass is returned by a classifier when no rule or branch applies,
// mirroring the source's ERROR_CLASS sentinel (-1).
const ErrorClass = -1

// Attribute describes one column of a feature row. Continuous attributes
// (only "pieces" in the Connect-Four encoding) are split on a learned
// midpoint threshold; every other column is a discrete 0/1 cell indicator.
type Attribute struct {
	Name       string
	Index      int
	Continuous bool
}

// entry is one outgoing branch of a decision node: either a leaf
// classification or a further subtree, never both. confidence is the
// fraction of training rows reaching this leaf that agreed with leaf; it is
// meaningless when isLeaf is false.
type entry struct {
	leaf       int
	confidence float64
	isLeaf     bool
	subtree    *decisionNode
}

// decisionNode is one internal ID3 split, grounded on ID3Tree.py's Node plus
// the branches dict id3_train builds around it.
type decisionNode struct {
	Attr      Attribute
	Threshold float64 // meaningful only when Attr.Continuous
	Gain      float64

	// Discrete split: one branch per observed attribute value.
	branches map[float64]entry
	// Continuous split: exactly two branches.
	ge, lt entry
}

// ID3Tree induces a decision tree over discrete and continuous attributes
// via information-gain maximization, grounded on DecisionTree/ID3Tree.py.
type ID3Tree struct {
	Attributes []Attribute
	Default    int

	root           *decisionNode
	isLeaf         bool
	trained        bool
	leaf           int
	leafConfidence float64
	trainRows      [][]float64
}

// NewID3Tree builds an untrained tree over the given attributes; Default is
// the conclusion returned when a training subset is empty.
func NewID3Tree(attributes []Attribute, def int) *ID3Tree {
	return &ID3Tree{Attributes: attributes, Default: def}
}

// entropy computes the Shannon entropy (base 2) of a label multiset.
func entropy(labels []float64) float64 {
	if len(labels) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	total := float64(len(labels))
	var h float64
	for _, c := range counts {
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}

func labelsOf(rows [][]float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row[len(row)-1]
	}
	return out
}

// Train builds the tree from rows, each a feature vector with the true
// column label appended as the trailing element. rows is retained for later
// FeatureImportance calls, mirroring the training split RuleSet/
// BaggingEnsemble already hold on to for the same purpose.
func (t *ID3Tree) Train(rows [][]float64) {
	t.trainRows = rows
	t.root, t.isLeaf, t.leaf, t.leafConfidence = t.train(rows, t.Attributes)
	t.trained = true
}

// train is id3_train: returns either a leaf classification or an internal
// decisionNode, never both — reported via the (isLeaf, leaf, confidence)
// tuple since Go has no tagged union. confidence is the fraction of rows
// reaching a leaf that agree with its label (1 when rows is empty, since an
// empty subset falls back to Default with no contradicting evidence).
func (t *ID3Tree) train(rows [][]float64, attrs []Attribute) (*decisionNode, bool, int, float64) {
	if len(rows) == 0 {
		return nil, true, t.Default, 1
	}

	labels := labelsOf(rows)
	if allEqual(labels) {
		return nil, true, int(labels[0]), 1
	}
	if len(attrs) == 0 {
		label := majorityLabel(labels)
		return nil, true, label, majorityConfidence(labels, label)
	}

	best, bestIdx := t.bestSplit(rows, attrs)

	if best.Attr.Continuous {
		above, below := partitionContinuous(rows, best.Attr.Index, best.Threshold)
		aNode, aLeaf, aVal, aConf := t.train(above, attrs)
		bNode, bLeaf, bVal, bConf := t.train(below, attrs)
		best.ge = entry{leaf: aVal, confidence: aConf, isLeaf: aLeaf, subtree: aNode}
		best.lt = entry{leaf: bVal, confidence: bConf, isLeaf: bLeaf, subtree: bNode}
		return best, false, 0, 0
	}

	remaining := removeAttribute(attrs, bestIdx)
	best.branches = map[float64]entry{}
	for _, val := range distinctValues(rows, best.Attr.Index) {
		subset := filterDiscrete(rows, best.Attr.Index, val)
		sNode, sLeaf, sVal, sConf := t.train(subset, remaining)
		best.branches[val] = entry{leaf: sVal, confidence: sConf, isLeaf: sLeaf, subtree: sNode}
	}
	return best, false, 0, 0
}

// bestSplit scores every candidate attribute and returns the decisionNode
// for the attribute maximizing information gain (id3_train's scores/max).
// Ties keep the first attribute in declaration order — attrs list order is
// itself deterministic, so results are reproducible, unlike the source's
// tuple-max tie-break which can compare an incomparable None threshold.
func (t *ID3Tree) bestSplit(rows [][]float64, attrs []Attribute) (*decisionNode, int) {
	bestGain := math.Inf(-1)
	var bestAttr Attribute
	var bestThresh float64
	bestIdx := -1

	for i, attr := range attrs {
		var gain, threshold float64
		if attr.Continuous {
			gain, threshold = t.continuousGain(rows, attr.Index)
		} else {
			gain = t.discreteGain(rows, attr.Index)
		}
		if gain > bestGain {
			bestGain, bestAttr, bestThresh, bestIdx = gain, attr, threshold, i
		}
	}

	return &decisionNode{Attr: bestAttr, Threshold: bestThresh, Gain: bestGain}, bestIdx
}

// continuousGain is id3_continuous: scan candidate midpoint thresholds
// between sorted distinct values and keep the one with highest gain.
func (t *ID3Tree) continuousGain(rows [][]float64, idx int) (float64, float64) {
	values := sortedDistinct(rows, idx)
	if len(values) <= 1 {
		return -1, 0
	}

	base := entropy(labelsOf(rows))
	bestGain, bestThresh := -1.0, values[0]

	for i := 0; i < len(values)-1; i++ {
		threshold := (values[i] + values[i+1]) / 2
		above, below := partitionContinuous(rows, idx, threshold)
		p := float64(len(above)) / float64(len(rows))
		n := float64(len(below)) / float64(len(rows))
		gain := base - p*entropy(labelsOf(above)) - n*entropy(labelsOf(below))
		if gain > bestGain {
			bestGain, bestThresh = gain, threshold
		}
	}
	return bestGain, bestThresh
}

// discreteGain is id3_discrete: base entropy minus the weighted remainder
// entropy across the attribute's observed values.
func (t *ID3Tree) discreteGain(rows [][]float64, idx int) float64 {
	base := entropy(labelsOf(rows))
	var remainder float64
	for _, val := range distinctValues(rows, idx) {
		subset := filterDiscrete(rows, idx, val)
		remainder += (float64(len(subset)) / float64(len(rows))) * entropy(labelsOf(subset))
	}
	return base - remainder
}

// Predict walks the tree for row, returning (ErrorClass, 0) if a discrete
// branch encounters a value never seen during training. confidence is the
// fraction of training rows reaching the matched leaf that agreed with its
// label, satisfying the Classifier interface (see classifier.go).
func (t *ID3Tree) Predict(row []float64) (int, float64) {
	if t.isLeaf {
		return t.leaf, t.leafConfidence
	}
	return predictNode(t.root, row)
}

func predictNode(n *decisionNode, row []float64) (int, float64) {
	var next entry
	if n.Attr.Continuous {
		if row[n.Attr.Index] >= n.Threshold {
			next = n.ge
		} else {
			next = n.lt
		}
	} else {
		e, ok := n.branches[row[n.Attr.Index]]
		if !ok {
			return ErrorClass, 0
		}
		next = e
	}

	if next.isLeaf {
		return next.leaf, next.confidence
	}
	if next.subtree == nil {
		return ErrorClass, 0
	}
	return predictNode(next.subtree, row)
}

// BuildRules flattens every root-to-leaf path into a Rule, grounded on
// ID3Tree.build_rules.
func (t *ID3Tree) BuildRules() []*Rule {
	if t.isLeaf {
		return []*Rule{NewRule(nil, t.leaf)}
	}
	return buildRules(t.root, nil)
}

func buildRules(n *decisionNode, premises []Premise) []*Rule {
	var rules []*Rule

	if n.Attr.Continuous {
		rules = append(rules, branchRules(n.ge, append(premises, Premise{n.Attr.Index, OpGE, n.Threshold}))...)
		rules = append(rules, branchRules(n.lt, append(premises, Premise{n.Attr.Index, OpLT, n.Threshold}))...)
		return rules
	}

	values := make([]float64, 0, len(n.branches))
	for v := range n.branches {
		values = append(values, v)
	}
	sort.Float64s(values)
	for _, v := range values {
		rules = append(rules, branchRules(n.branches[v], append(premises, Premise{n.Attr.Index, OpEQ, v}))...)
	}
	return rules
}

func branchRules(e entry, premises []Premise) []*Rule {
	if e.isLeaf {
		return []*Rule{NewRule(premises, e.leaf)}
	}
	if e.subtree == nil {
		return nil
	}
	return buildRules(e.subtree, premises)
}

// FeatureImportance attributes each internal node's information gain to its
// split attribute, weighted by the fraction of training rows reaching that
// node, and optionally normalizes the result to sum to 1, satisfying the
// ImportanceClassifier interface (see classifier.go). It uses the rows
// passed to the last Train call, the same way RuleSet.FeatureImportance
// threads its own training split through its receiver rather than an extra
// parameter. Ruleset.py's source calls clf.feature_importance() but never
// defines the method on Ruleset; this fills that gap with the gain-weighted
// attribution the rest of the pipeline already computes gain for.
func (t *ID3Tree) FeatureImportance(normalize bool) (map[string]float64, error) {
	if !t.trained {
		return nil, ErrUntrainedModel
	}

	importance := make(map[string]float64, len(t.Attributes))
	for _, a := range t.Attributes {
		importance[a.Name] = 0
	}
	if t.isLeaf {
		return importance, nil
	}

	accumulateImportance(t.root, t.trainRows, importance)
	for k, v := range importance {
		importance[k] = v / float64(len(t.trainRows))
	}

	if normalize {
		var total float64
		for _, v := range importance {
			total += v
		}
		if total > 0 {
			for k, v := range importance {
				importance[k] = v / total
			}
		}
	}
	return importance, nil
}

func accumulateImportance(n *decisionNode, rows [][]float64, importance map[string]float64) {
	if len(rows) == 0 {
		return
	}
	weight := float64(len(rows))
	importance[n.Attr.Name] += n.Gain * weight

	if n.Attr.Continuous {
		above, below := partitionContinuous(rows, n.Attr.Index, n.Threshold)
		if n.ge.subtree != nil {
			accumulateImportance(n.ge.subtree, above, importance)
		}
		if n.lt.subtree != nil {
			accumulateImportance(n.lt.subtree, below, importance)
		}
		return
	}

	for val, e := range n.branches {
		if e.subtree == nil {
			continue
		}
		accumulateImportance(e.subtree, filterDiscrete(rows, n.Attr.Index, val), importance)
	}
}

func allEqual(labels []float64) bool {
	for _, l := range labels[1:] {
		if l != labels[0] {
			return false
		}
	}
	return true
}

func majorityLabel(labels []float64) int {
	counts := make(map[float64]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	best, bestCount := labels[0], 0
	for l, c := range counts {
		if c > bestCount {
			best, bestCount = l, c
		}
	}
	return int(best)
}

// majorityConfidence is the fraction of labels agreeing with label.
func majorityConfidence(labels []float64, label int) float64 {
	var agree int
	for _, l := range labels {
		if int(l) == label {
			agree++
		}
	}
	return float64(agree) / float64(len(labels))
}

func distinctValues(rows [][]float64, idx int) []float64 {
	seen := map[float64]bool{}
	var values []float64
	for _, row := range rows {
		v := row[idx]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

func sortedDistinct(rows [][]float64, idx int) []float64 {
	return distinctValues(rows, idx)
}

func filterDiscrete(rows [][]float64, idx int, val float64) [][]float64 {
	var out [][]float64
	for _, row := range rows {
		if row[idx] == val {
			out = append(out, row)
		}
	}
	return out
}

func partitionContinuous(rows [][]float64, idx int, threshold float64) (above, below [][]float64) {
	for _, row := range rows {
		if row[idx] >= threshold {
			above = append(above, row)
		} else {
			below = append(below, row)
		}
	}
	return above, below
}

func removeAttribute(attrs []Attribute, idx int) []Attribute {
	out := make([]Attribute, 0, len(attrs)-1)
	for i, a := range attrs {
		if i != idx {
			out = append(out, a)
		}
	}
	return out
}
