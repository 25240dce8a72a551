package tree

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

// persistedRule/persistedRuleSet/persistedEnsemble are gob-friendly mirrors
// of Rule/RuleSet/BaggingEnsemble: only the state Predict and
// FeatureImportance actually need survives a save/load round trip — the
// source's save_model/load_model pickle the whole Python object graph
// (including the raw training split), which Go's gob cannot do for
// unexported fields, so persistence here is need-based rather than a literal
// mirror of pickle.
type persistedRule struct {
	Premises   []Premise
	Conclusion int
	Accuracy   float64
}

type persistedRuleSet struct {
	Rules   []persistedRule
	Default int
}

type persistedEnsemble struct {
	Attributes  []Attribute
	Default     int
	Classifiers []persistedRuleSet
}

// MarshalBinary implements encoding.BinaryMarshaler via gob, enough state to
// reconstruct Predict behavior after UnmarshalBinary.
func (b *BaggingEnsemble) MarshalBinary() ([]byte, error) {
	p := persistedEnsemble{Attributes: b.Attributes, Default: b.Default}
	for _, clf := range b.classifiers {
		pr := persistedRuleSet{Default: clf.Default}
		for _, r := range clf.Rules {
			pr.Rules = append(pr.Rules, persistedRule{
				Premises:   r.Premises,
				Conclusion: r.Conclusion,
				Accuracy:   r.Accuracy(),
			})
		}
		p.Classifiers = append(p.Classifiers, pr)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, errors.Wrap(err, "tree: encode ensemble")
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, rebuilding enough
// of the ensemble's Rules to predict — FeatureImportance is unavailable on a
// loaded ensemble since it needs the underlying ID3Tree's gain structure,
// not just flattened rules.
func (b *BaggingEnsemble) UnmarshalBinary(data []byte) error {
	var p persistedEnsemble
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return errors.Wrap(err, "tree: decode ensemble")
	}

	b.Attributes = p.Attributes
	b.Default = p.Default
	b.classifiers = make([]*RuleSet, len(p.Classifiers))
	for i, pr := range p.Classifiers {
		rs := &RuleSet{Attributes: p.Attributes, Default: pr.Default}
		for _, r := range pr.Rules {
			rule := NewRule(r.Premises, r.Conclusion)
			rule.accuracy = r.Accuracy
			rs.Rules = append(rs.Rules, rule)
		}
		b.classifiers[i] = rs
	}
	return nil
}
