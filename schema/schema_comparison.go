package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State is the interactive state of a browsing session.
type State struct {
	SearchQuery string   `json:"search_query"`
	SortKey     SortKey  `json:"sort_key"`
	Selection   []string `json:"selection"` // Language ids in selection order
}

// View holds the views derived from the catalog and the current State.
type View struct {
	VisibleEntries   []Language      `json:"visible_entries"`
	SelectedEntries  []Language      `json:"selected_entries"`
	ComparisonSeries []ComparisonRow `json:"comparison_series"`
}

// SeriesValue is one selected language's score within a comparison row.
type SeriesValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ComparisonRow carries one subject and the score of every selected language for it.
type ComparisonRow struct {
	Subject Subject
	Values  []SeriesValue // In selection order
}

// Value returns the score stored under the given series name.
func (r ComparisonRow) Value(name string) (float64, bool) {
	for _, v := range r.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// MarshalJSON renders the row as a flat object: {"subject": ..., "<name>": value, ...}.
// Keys keep selection order. The label is always the first key, so a language
// named "subject" repeats the key and UnmarshalJSON still tells them apart.
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	key, err := json.Marshal("subject")
	if err != nil {
		return nil, err
	}
	subject, err := json.Marshal(r.Subject)
	if err != nil {
		return nil, err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(subject)
	for _, v := range r.Values {
		name, err := json.Marshal(v.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(v.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the flat object form written by MarshalJSON.
// Series order follows the key order of the input. Only the first "subject"
// key is the label; later ones are series values.
func (r *ComparisonRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("comparison row must be a JSON object")
	}
	row := ComparisonRow{}
	labelRead := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if key == "subject" && !labelRead {
			labelRead = true
			var s string
			if err := dec.Decode(&s); err != nil {
				return fmt.Errorf("comparison row subject: %w", err)
			}
			row.Subject = Subject(s)
			continue
		}
		var v float64
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("comparison row value for %q: %w", key, err)
		}
		row.Values = append(row.Values, SeriesValue{Name: key, Value: v})
	}
	*r = row
	return nil
}

// ToggleResult reports the effect of a selection toggle.
type ToggleResult struct {
	ID        string        `json:"id"`
	Outcome   ToggleOutcome `json:"outcome"`
	Selection []string      `json:"selection"`
}
