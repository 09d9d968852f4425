package core

import (
	"github.com/langradar/langradar/schema"
)

// BuildMetricChart prepares a single-language radar chart: one point per scale
// axis in axis order, whatever order the language stores its metrics in.
func BuildMetricChart(l schema.Language, scale schema.Scale) schema.MetricChart {
	idx := l.Index()
	points := make([]schema.MetricPoint, len(scale.Axes))
	for i, subject := range scale.Axes {
		points[i] = schema.MetricPoint{Subject: subject, Value: idx[subject], MaxValue: scale.Max}
	}
	return schema.MetricChart{
		Title:  l.Name,
		Color:  l.Color,
		Scale:  scale,
		Points: points,
	}
}

// BuildComparisonChart prepares the overlaid radar chart of the selected languages.
func BuildComparisonChart(view schema.View, scale schema.Scale) schema.ComparisonChart {
	series := make([]schema.ChartSeries, len(view.SelectedEntries))
	for i, l := range view.SelectedEntries {
		series[i] = schema.ChartSeries{Name: l.Name, Color: l.Color}
	}
	rows := view.ComparisonSeries
	if rows == nil {
		rows = []schema.ComparisonRow{}
	}
	return schema.ComparisonChart{
		Scale:  scale,
		Series: series,
		Rows:   rows,
	}
}
