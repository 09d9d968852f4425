// Package schema has models, constants and small helpers shared by all parts of langradar.
package schema

import "math"

// MetricPoint is one scored subject of a language.
type MetricPoint struct {
	Subject  Subject `json:"subject" yaml:"subject"` // One of the six fixed subjects
	Value    float64 `json:"value" yaml:"value"`     // Score on the shared scale, 0 <= Value <= MaxValue
	MaxValue float64 `json:"max" yaml:"max"`         // Scale ceiling, always 10 in the bundled catalog
}

// Language is one immutable catalog record.
type Language struct {
	ID         string        `json:"id" yaml:"id"`                 // Stable selection key, unique across the catalog
	Name       string        `json:"name" yaml:"name"`             // Display name, also the comparison series label
	Color      string        `json:"color" yaml:"color"`           // Accent color token (e.g. "#306998")
	Philosophy string        `json:"philosophy" yaml:"philosophy"` // Short descriptive motto
	Pros       []string      `json:"pros" yaml:"pros"`             // Strengths in display order
	Cons       []string      `json:"cons" yaml:"cons"`             // Weaknesses in display order
	Metrics    []MetricPoint `json:"metrics" yaml:"metrics"`       // Exactly six points in canonical subject order
}

// Value returns the score for the given subject by label match.
// The boolean is false when the language has no point for that subject.
func (l Language) Value(subject Subject) (float64, bool) {
	for _, m := range l.Metrics {
		if m.Subject == subject {
			return m.Value, true
		}
	}
	return 0, false
}

// ScoreOrZero returns the score for the given subject, or 0 when it is missing.
func (l Language) ScoreOrZero(subject Subject) float64 {
	v, _ := l.Value(subject)
	return v
}

// ScoreIndex maps each subject to its score for O(1) lookup.
type ScoreIndex map[Subject]float64

// Index builds the subject to score mapping of a language.
// When a subject appears more than once, the first point wins. NaN scores
// are indexed as 0, the same as a missing subject.
func (l Language) Index() ScoreIndex {
	idx := make(ScoreIndex, len(l.Metrics))
	for _, m := range l.Metrics {
		if _, seen := idx[m.Subject]; seen {
			continue
		}
		if math.IsNaN(m.Value) {
			idx[m.Subject] = 0
			continue
		}
		idx[m.Subject] = m.Value
	}
	return idx
}

// Clone returns a deep copy so callers cannot mutate catalog content.
func (l Language) Clone() Language {
	clone := l
	clone.Pros = append([]string(nil), l.Pros...)
	clone.Cons = append([]string(nil), l.Cons...)
	clone.Metrics = append([]MetricPoint(nil), l.Metrics...)
	return clone
}

// CloneLanguages deep-copies a slice of languages.
func CloneLanguages(langs []Language) []Language {
	if langs == nil {
		return nil
	}
	out := make([]Language, len(langs))
	for i, l := range langs {
		out[i] = l.Clone()
	}
	return out
}
