package tree

// Classifier is the common prediction contract every trained model in this
// package satisfies: RuleSet returns its first matching rule, BaggingEnsemble
// votes across its RuleSets, ID3Tree walks its decision path directly.
type Classifier interface {
	Predict(row []float64) (label int, confidence float64)
}

// ImportanceClassifier is a Classifier that can also attribute its
// predictive power back to individual feature columns, grounded on
// Bootstrap_Aggregating.py's feature_importance reporting.
type ImportanceClassifier interface {
	Classifier
	FeatureImportance(normalize bool) (map[string]float64, error)
}

var (
	_ Classifier = (*ID3Tree)(nil)
	_ Classifier = (*RuleSet)(nil)
	_ Classifier = (*BaggingEnsemble)(nil)

	_ ImportanceClassifier = (*ID3Tree)(nil)
	_ ImportanceClassifier = (*RuleSet)(nil)
	_ ImportanceClassifier = (*BaggingEnsemble)(nil)
)
