// Package pipeline wires the strprof building blocks into the operations the
// CLI exposes: generating a corpus, plotting timing data, summarizing it and
// checking a generated corpus against its preamble.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	spec, _ := dist.Parse("uniform", []string{"1", "64"})
//	res, err := runner.Generate(ctx, os.Stdout, pipeline.GenerateOptions{
//	    Spec:     spec,
//	    Count:    1000,
//	    Preamble: true,
//	})
//
//	plots, err := runner.Plot(ctx, csvBytes, pipeline.PlotOptions{
//	    Formats: []string{plot.FormatSVG},
//	    Options: plot.Options{Title: "Iteration", XLabel: "block size", YLabel: "s"},
//	    Clocks:  true,
//	})
//	svg := plots.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/matzehuels/strprof/pkg/cache"
	"github.com/matzehuels/strprof/pkg/dist"
	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/plot"
	"github.com/matzehuels/strprof/pkg/preamble"
)

// GenerateOptions configures [Runner.Generate].
type GenerateOptions struct {
	Spec  dist.Spec
	Count int

	// Seed drives every random draw when SeedSet is true. Otherwise a random
	// seed is chosen and reported in the result.
	Seed    uint64
	SeedSet bool

	// Preamble writes the "# count mean variance" line before the corpus.
	Preamble bool
}

// Validate checks that the options describe a runnable generation.
func (o GenerateOptions) Validate() error {
	if o.Spec == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "distribution is required")
	}
	if err := o.Spec.Validate(); err != nil {
		return err
	}
	return errors.ValidatePositive("count", o.Count)
}

// GenerateResult describes a finished generation run. It is written as the
// JSON manifest sidecar by the CLI.
type GenerateResult struct {
	RunID    string         `json:"run_id"`
	Kind     dist.Kind      `json:"kind"`
	Params   []string       `json:"params"`
	Seed     uint64         `json:"seed"`
	Count    int            `json:"count"`
	Preamble bool           `json:"preamble"`
	Stats    preamble.Stats `json:"stats"`
	Written  int            `json:"written"`
	Duration time.Duration  `json:"duration_ns"`
}

// PlotOptions configures [Runner.Plot].
type PlotOptions struct {
	// Formats to render. Defaults to svg.
	Formats []string

	Options plot.Options

	// Clocks divides every dependent series by profile.ClocksPerSec before
	// plotting, turning clock ticks into seconds.
	Clocks bool

	// Refresh skips cache lookups. Fresh renders are still stored.
	Refresh bool
}

// ValidateAndSetDefaults fills defaults and rejects unknown formats.
func (o *PlotOptions) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{plot.FormatSVG}
	}
	for _, f := range o.Formats {
		if err := plot.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *PlotOptions) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Title:  o.Options.Title,
		XLabel: o.Options.XLabel,
		YLabel: o.Options.YLabel,
		Width:  o.Options.Width,
		Height: o.Options.Height,
		Scale:  o.Options.Scale,
		Clocks: o.Clocks,
	}
}

// PlotResult contains rendered plots keyed by format.
type PlotResult struct {
	Artifacts map[string][]byte

	// Series counts the plotted (dependent) series; Rows the measurements per series.
	Series int
	Rows   int

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
	Duration time.Duration
}

// InspectResult compares a generated corpus with the preamble it declares.
type InspectResult struct {
	// Declared is nil when the corpus has no preamble.
	Declared *preamble.Stats

	Lines    int
	Mean     float64
	Variance float64
	MinLen   int
	MaxLen   int
}

// CountMatches reports whether the number of strings equals the declared count.
// It is true when there is no preamble.
func (r *InspectResult) CountMatches() bool {
	return r.Declared == nil || r.Declared.Count == r.Lines
}
