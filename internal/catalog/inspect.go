package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/langradar/langradar/schema"
)

// DefectKind classifies a catalog data defect.
type DefectKind string

// Kinds of data defects. None of them stop a catalog from being browsed.
const (
	MissingSubject   DefectKind = "missing_subject"
	DuplicateSubject DefectKind = "duplicate_subject"
	UnknownSubject   DefectKind = "unknown_subject"
	OutOfRange       DefectKind = "out_of_range"
	ScaleMismatch    DefectKind = "scale_mismatch"
	AxisOrder        DefectKind = "axis_order"
)

// Defect is one data-integrity problem found in a catalog entry.
type Defect struct {
	ID     string     `json:"id"`
	Kind   DefectKind `json:"kind"`
	Detail string     `json:"detail"`
}

// Validate rejects catalogs that cannot be browsed: entries without an id or
// name, and ids used more than once.
func Validate(entries []schema.Language) error {
	seen := make(map[string]struct{}, len(entries))
	for i, l := range entries {
		if strings.TrimSpace(l.ID) == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidCatalog, i)
		}
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("%w: entry %q has no name", ErrInvalidCatalog, l.ID)
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return nil
}

// Inspect reports metric defects of every entry against the scale.
func Inspect(entries []schema.Language, scale schema.Scale) []Defect {
	var defects []Defect
	axes := make(map[schema.Subject]struct{}, len(scale.Axes))
	for _, a := range scale.Axes {
		axes[a] = struct{}{}
	}

	for _, l := range entries {
		before := len(defects)
		counts := make(map[schema.Subject]int, len(l.Metrics))
		for _, m := range l.Metrics {
			counts[m.Subject]++
			if _, known := axes[m.Subject]; !known {
				defects = append(defects, Defect{l.ID, UnknownSubject, string(m.Subject)})
				continue
			}
			if m.MaxValue != scale.Max {
				defects = append(defects, Defect{l.ID, ScaleMismatch, fmt.Sprintf("%s max %v, want %v", m.Subject, m.MaxValue, scale.Max)})
			}
			if math.IsNaN(m.Value) || m.Value < scale.Min || m.Value > scale.Max {
				defects = append(defects, Defect{l.ID, OutOfRange, fmt.Sprintf("%s = %v", m.Subject, m.Value)})
			}
		}
		for _, a := range scale.Axes {
			switch n := counts[a]; {
			case n == 0:
				defects = append(defects, Defect{l.ID, MissingSubject, string(a)})
			case n > 1:
				defects = append(defects, Defect{l.ID, DuplicateSubject, fmt.Sprintf("%s appears %d times", a, n)})
			}
		}
		if len(defects) == before && !inAxisOrder(l.Metrics, scale.Axes) {
			defects = append(defects, Defect{l.ID, AxisOrder, "metrics are not in canonical subject order"})
		}
	}
	return defects
}

// inAxisOrder reports whether the metric subjects match the axes exactly, in order.
func inAxisOrder(metrics []schema.MetricPoint, axes []schema.Subject) bool {
	if len(metrics) != len(axes) {
		return false
	}
	for i, m := range metrics {
		if m.Subject != axes[i] {
			return false
		}
	}
	return true
}
