package plot

import (
	"math"
	"strconv"
)

// axis is a padded data range with evenly spaced, human-friendly ticks.
type axis struct {
	lo, hi float64
	step   float64
	ticks  []float64
}

// niceAxis widens [min, max] to round tick boundaries with roughly maxTicks
// ticks (Heckbert's "nice numbers"). Degenerate ranges are widened first.
// When the nice step is too small to move a float64 at the data's magnitude,
// the axis falls back to the bare [min, max] endpoints.
func niceAxis(min, max float64, maxTicks int) axis {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		min, max = 0, 1
	}
	if min == max {
		pad := math.Abs(min) / 2
		if pad == 0 {
			pad = 1
		}
		min, max = min-pad, max+pad
	}

	span := niceNum(max-min, false)
	step := niceNum(span/float64(maxTicks-1), true)
	lo := math.Floor(min/step) * step
	hi := math.Ceil(max/step) * step

	if lo+step == lo || hi-step == hi {
		return axis{lo: min, hi: max, step: max - min, ticks: []float64{min, max}}
	}

	n := int(math.Round((hi - lo) / step))
	if limit := 4 * maxTicks; n > limit {
		n = limit
	}
	a := axis{lo: lo, hi: hi, step: step, ticks: make([]float64, 0, n+1)}
	for i := 0; i <= n; i++ {
		a.ticks = append(a.ticks, roundTo(lo+float64(i)*step, step))
	}
	return a
}

func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

// decimals is the number of fractional digits needed to print multiples of step.
func decimals(step float64) int {
	d := -int(math.Floor(math.Log10(step)))
	if d < 0 {
		return 0
	}
	return d
}

func roundTo(v, step float64) float64 {
	p := math.Pow(10, float64(decimals(step)))
	return math.Round(v*p) / p
}

func (a axis) label(v float64) string {
	return strconv.FormatFloat(v, 'f', decimals(a.step), 64)
}

// scale maps v from the axis range onto [from, to].
func (a axis) scale(v, from, to float64) float64 {
	return from + (v-a.lo)/(a.hi-a.lo)*(to-from)
}
