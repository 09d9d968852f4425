// Package radar draws radar charts for the terminal and as SVG documents.
// Every chart uses the scale it is given, so overlaid series stay comparable.
package radar

import (
	"math"

	"github.com/langradar/langradar/schema"
)

// point is a position in SVG user space.
type point struct {
	X, Y float64
}

// axisAngle returns the angle of axis i out of n, starting at 12 o'clock and
// going clockwise.
func axisAngle(i, n int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
}

// polar converts a radius along axis i of n into a position around center.
func polar(center point, radius float64, i, n int) point {
	a := axisAngle(i, n)
	return point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
}

// gridLevels returns the values of the concentric grid polygons, excluding the minimum.
func gridLevels(scale schema.Scale, steps int) []float64 {
	if steps <= 0 || scale.Max <= scale.Min {
		return nil
	}
	levels := make([]float64, steps)
	step := (scale.Max - scale.Min) / float64(steps)
	for i := range levels {
		levels[i] = scale.Min + step*float64(i+1)
	}
	return levels
}
