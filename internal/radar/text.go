package radar

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/schema"
)

// DefaultBarWidth is the bar length drawn for a value at the scale maximum.
const DefaultBarWidth = 30

// fallbackColor is used when a series has no usable color token.
const fallbackColor = "#9CA3AF"

// TextRenderer draws radar charts as horizontal bars, one per axis.
type TextRenderer struct {
	BarWidth  int
	Precision int
	UseColors bool
}

var _ contract.ChartRenderer = &TextRenderer{} // Compile-time check

// NewTextRenderer creates a TextRenderer with the default bar width.
func NewTextRenderer(precision int, useColors bool) *TextRenderer {
	return &TextRenderer{BarWidth: DefaultBarWidth, Precision: precision, UseColors: useColors}
}

// RenderMetricChart writes one bar per axis for a single language.
func (r *TextRenderer) RenderMetricChart(w io.Writer, chart schema.MetricChart) error {
	paint := r.painter(chart.Color)
	labelWidth := axisLabelWidth(chart.Scale.Axes)

	if _, err := fmt.Fprintf(w, "%s (%s-%s)\n", paint.Sprint(chart.Title),
		schema.FormatValue(chart.Scale.Min), schema.FormatValue(chart.Scale.Max)); err != nil {
		return err
	}
	for _, p := range chart.Points {
		if _, err := fmt.Fprintf(w, "  %s %s %s\n",
			padRight(string(p.Subject), labelWidth),
			paint.Sprint(r.bar(chart.Scale, p.Value)),
			r.formatValue(p.Value)); err != nil {
			return err
		}
	}
	return nil
}

// RenderComparisonChart writes a legend and, for every axis, one bar per series.
func (r *TextRenderer) RenderComparisonChart(w io.Writer, chart schema.ComparisonChart) error {
	if len(chart.Series) == 0 {
		_, err := fmt.Fprintln(w, "No languages selected.")
		return err
	}

	painters := make([]*color.Color, len(chart.Series))
	nameWidth := 0
	legend := make([]string, len(chart.Series))
	for i, s := range chart.Series {
		p := r.painter(s.Color)
		painters[i] = p
		legend[i] = p.Sprint("■") + " " + s.Name
		nameWidth = max(nameWidth, utf8.RuneCountInString(s.Name))
	}
	if _, err := fmt.Fprintln(w, strings.Join(legend, "   ")); err != nil {
		return err
	}

	for _, row := range chart.Rows {
		if _, err := fmt.Fprintln(w, string(row.Subject)); err != nil {
			return err
		}
		// Row values follow series order, so names may repeat without sharing a color.
		for i, v := range row.Values {
			paint := r.painter("")
			if i < len(painters) {
				paint = painters[i]
			}
			if _, err := fmt.Fprintf(w, "  %s %s %s\n",
				padRight(v.Name, nameWidth),
				paint.Sprint(r.bar(chart.Scale, v.Value)),
				r.formatValue(v.Value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// painter returns the color of a series, or a no-op color when colors are off.
func (r *TextRenderer) painter(hex string) *color.Color {
	if !r.UseColors {
		c := color.New()
		c.DisableColor()
		return c
	}
	red, green, blue, err := contract.ParseHexColor(hex)
	if err != nil {
		red, green, blue, _ = contract.ParseHexColor(fallbackColor)
	}
	c := color.RGB(int(red), int(green), int(blue))
	c.EnableColor()
	return c
}

// bar returns a bar proportional to v on the scale, padded to the full width.
func (r *TextRenderer) bar(scale schema.Scale, v float64) string {
	width := r.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}
	filled := min(max(int(math.Round(scale.Fraction(v)*float64(width))), 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

func (r *TextRenderer) formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', r.Precision, 64)
}

// axisLabelWidth returns the longest axis label in runes.
func axisLabelWidth(axes []schema.Subject) int {
	width := 0
	for _, a := range axes {
		width = max(width, utf8.RuneCountInString(string(a)))
	}
	return width
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
