package radar

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
)

// DefaultSVGSize is the width and height of the chart area in pixels.
const DefaultSVGSize = 480

// gridSteps is the number of concentric grid polygons.
const gridSteps = 5

// SVGRenderer draws radar charts as standalone SVG documents.
type SVGRenderer struct {
	Size int
}

var _ contract.ChartRenderer = &SVGRenderer{} // Compile-time check

// NewSVGRenderer creates an SVGRenderer of the default size.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{Size: DefaultSVGSize}
}

// svgSeries is one polygon with its values in axis order.
type svgSeries struct {
	name   string
	color  string
	values []float64
}

// RenderMetricChart writes the radar chart of a single language.
func (r *SVGRenderer) RenderMetricChart(w io.Writer, chart schema.MetricChart) error {
	values := make([]float64, len(chart.Points))
	for i, p := range chart.Points {
		values[i] = p.Value
	}
	return r.render(w, chart.Title, chart.Scale, []svgSeries{{name: chart.Title, color: chart.Color, values: values}})
}

// RenderComparisonChart writes all selected languages as overlaid polygons on one scale.
func (r *SVGRenderer) RenderComparisonChart(w io.Writer, chart schema.ComparisonChart) error {
	series := make([]svgSeries, len(chart.Series))
	for i, s := range chart.Series {
		values := make([]float64, len(chart.Rows))
		for j, row := range chart.Rows {
			if i < len(row.Values) {
				values[j] = row.Values[i].Value
			}
		}
		series[i] = svgSeries{name: s.Name, color: s.Color, values: values}
	}
	names := make([]string, len(chart.Series))
	for i, s := range chart.Series {
		names[i] = s.Name
	}
	return r.render(w, strings.Join(names, " vs "), chart.Scale, series)
}

func (r *SVGRenderer) render(w io.Writer, title string, scale schema.Scale, series []svgSeries) error {
	size := float64(r.Size)
	if size <= 0 {
		size = DefaultSVGSize
	}
	legendHeight := 24.0 * float64(len(series))
	center := point{X: size / 2, Y: size / 2}
	radius := size/2 - 70
	n := len(scale.Axes)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" role="img" aria-label="%s" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		template.HTMLEscapeString(title), size, size+legendHeight, size, size+legendHeight)
	buf.WriteString("\n")
	buf.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")

	if n >= 3 {
		for _, level := range gridLevels(scale, gridSteps) {
			fmt.Fprintf(&buf, `<polygon class="grid" points="%s" fill="none" stroke="#d1d5db" stroke-width="1"/>`,
				polygonPoints(center, radius, scale, repeat(level, n)))
			buf.WriteString("\n")
		}
		for i, axis := range scale.Axes {
			end := polar(center, radius, i, n)
			label := polar(center, radius+22, i, n)
			fmt.Fprintf(&buf, `<line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#9ca3af" stroke-width="1"/>`,
				center.X, center.Y, end.X, end.Y)
			fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="central" font-family="sans-serif" font-size="13" fill="#374151">%s</text>`,
				label.X, label.Y, anchor(label.X, center.X), template.HTMLEscapeString(string(axis)))
			buf.WriteString("\n")
		}
		for _, s := range series {
			c := template.HTMLEscapeString(s.color)
			fmt.Fprintf(&buf, `<polygon class="series" data-name="%s" points="%s" fill="%s" fill-opacity="0.3" stroke="%s" stroke-width="2"/>`,
				template.HTMLEscapeString(s.name), polygonPoints(center, radius, scale, s.values), c, c)
			buf.WriteString("\n")
		}
	}

	for i, s := range series {
		y := size + 12 + 24*float64(i)
		c := template.HTMLEscapeString(s.color)
		fmt.Fprintf(&buf, `<rect class="legend" x="24" y="%.0f" width="14" height="14" fill="%s"/>`, y-7, c)
		fmt.Fprintf(&buf, `<text x="46" y="%.0f" dominant-baseline="central" font-family="sans-serif" font-size="13" fill="#111827">%s</text>`,
			y, template.HTMLEscapeString(s.name))
		buf.WriteString("\n")
	}
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// polygonPoints returns the SVG points attribute for values in axis order.
func polygonPoints(center point, radius float64, scale schema.Scale, values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		p := polar(center, radius*scale.Fraction(v), i, len(values))
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// anchor aligns axis labels away from the chart center.
func anchor(x, centerX float64) string {
	switch {
	case x < centerX-1:
		return "end"
	case x > centerX+1:
		return "start"
	default:
		return "middle"
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
