// Package palette assigns plot colors to data series.
//
// Colors are sampled at evenly spaced positions along a rainbow colormap
// running from violet-blue (0.0) through green to red (1.0). The result
// depends on the series count alone, so index i always names the same color
// for the same number of series.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rainbow maps x in [0, 1] to a color on the rainbow colormap.
// x is clamped to [0, 1].
func Rainbow(x float64) colorful.Color {
	x = clamp(x)
	return colorful.Color{
		R: clamp(math.Abs(2*x - 0.5)),
		G: clamp(math.Sin(math.Pi * x)),
		B: clamp(math.Cos(math.Pi / 2 * x)),
	}
}

// Positions returns n evenly spaced positions from 0.0 to 1.0 inclusive.
// n == 1 yields [0.0]; n <= 0 yields an empty slice.
func Positions(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// Colors returns n colors in ascending colormap position. Index i is meant
// for the i-th dependent series. Callers pass the dependent series count, not
// the CSV column count, so the last series always lands on red (1.0).
func Colors(n int) []colorful.Color {
	pos := Positions(n)
	out := make([]colorful.Color, len(pos))
	for i, x := range pos {
		out[i] = Rainbow(x)
	}
	return out
}

// Hex returns the colors as "#rrggbb" strings, for SVG attributes.
func Hex(colors []colorful.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
