package profile

import (
	"github.com/montanaflynn/stats"
)

// SeriesSummary describes one dependent series.
type SeriesSummary struct {
	Label  string
	Points int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
}

// Summarize computes a SeriesSummary for every dependent series, in column
// order. Series without data points are reported with Points == 0 and zero
// statistics.
func (d *Data) Summarize() []SeriesSummary {
	out := make([]SeriesSummary, 0, d.NSeries()-1)
	for i := 1; i < len(d.series); i++ {
		out = append(out, summarize(d.labels[i], d.series[i]))
	}
	return out
}

func summarize(label string, values []float64) SeriesSummary {
	s := SeriesSummary{Label: label, Points: len(values)}
	if len(values) == 0 {
		return s
	}

	data := stats.Float64Data(values)
	// The stats functions only fail on empty input, which is excluded above.
	s.Min, _ = data.Min()
	s.Max, _ = data.Max()
	s.Mean, _ = data.Mean()
	s.Median, _ = data.Median()
	s.StdDev, _ = data.StandardDeviationPopulation()
	return s
}
