package schema

import "math"

// Scale is the radial scale shared by every radar chart.
type Scale struct {
	Min  float64   `json:"min"`
	Max  float64   `json:"max"`
	Axes []Subject `json:"axes"` // Axis order, identical for all charts
}

// DefaultScale returns the 0-10 scale over the six subjects in canonical order.
func DefaultScale() Scale {
	return Scale{Min: ScaleMin, Max: ScaleMax, Axes: AllSubjects()}
}

// Clamp restricts v to the scale bounds. NaN clamps to Min.
func (s Scale) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < s.Min:
		return s.Min
	case v > s.Max:
		return s.Max
	default:
		return v
	}
}

// Fraction maps v onto [0, 1] along the scale.
func (s Scale) Fraction(v float64) float64 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return (s.Clamp(v) - s.Min) / span
}

// MetricChart is the input of a single-language radar chart.
type MetricChart struct {
	Title  string        `json:"title"`
	Color  string        `json:"color"`
	Scale  Scale         `json:"scale"`
	Points []MetricPoint `json:"points"` // One per axis, in axis order
}

// ChartSeries identifies one overlaid polygon of a comparison chart.
type ChartSeries struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ComparisonChart is the input of the overlaid comparison radar chart.
type ComparisonChart struct {
	Scale  Scale           `json:"scale"`
	Series []ChartSeries   `json:"series"` // Selection order
	Rows   []ComparisonRow `json:"rows"`   // One per axis, in axis order
}
