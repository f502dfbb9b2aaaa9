package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/strprof/pkg/cache"
	"github.com/matzehuels/strprof/pkg/observability"
	"github.com/matzehuels/strprof/pkg/plot"
	"github.com/matzehuels/strprof/pkg/profile"
)

const artifactKeyType = "artifact"

// Plot parses csv and renders it in every requested format.
//
// Artifacts are cached under the hash of the raw CSV and the options that
// affect the output. When every format is cached the CSV is not re-rendered,
// but it is still parsed so malformed input always fails.
func (r *Runner) Plot(ctx context.Context, csv []byte, opts PlotOptions) (res *PlotResult, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	d, err := r.loadProfile(ctx, csv, opts.Clocks)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res = &PlotResult{Artifacts: make(map[string][]byte), Series: d.NSeries() - 1, Rows: d.Rows()}
	observability.Pipeline().OnPlotStart(ctx, opts.Formats, res.Series)
	defer func() {
		res.Duration = time.Since(start)
		observability.Pipeline().OnPlotComplete(ctx, opts.Formats, res.Duration, err)
	}()

	inputHash := cache.Hash(csv)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, artifactKeyType)
				break
			}
			observability.Cache().OnCacheHit(ctx, artifactKeyType)
			res.Artifacts[format] = data
		}
		if len(res.Artifacts) == len(opts.Formats) {
			res.CacheHit = true
			r.Logger.Debug("plot served from cache", "formats", opts.Formats)
			return res, nil
		}
	}

	svg, err := plot.RenderSVG(d, opts.Options)
	if err != nil {
		return res, err
	}
	for _, format := range opts.Formats {
		data, err := plot.Convert(svg, format, opts.Options)
		if err != nil {
			return res, err
		}
		res.Artifacts[format] = data

		key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.artifactTTL()); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, artifactKeyType, len(data))
	}

	r.Logger.Info("rendered plot",
		"series", res.Series,
		"rows", d.Rows(),
		"formats", opts.Formats,
		"duration", time.Since(start))
	return res, nil
}

// Summarize parses csv and returns per-series statistics.
func (r *Runner) Summarize(ctx context.Context, csv []byte, clocks bool) ([]profile.SeriesSummary, error) {
	d, err := r.loadProfile(ctx, csv, clocks)
	if err != nil {
		return nil, err
	}
	return d.Summarize(), nil
}

func (r *Runner) loadProfile(ctx context.Context, csv []byte, clocks bool) (*profile.Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := profile.Parse(bytes.NewReader(csv))
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("parsed profile", "series", d.NSeries(), "rows", d.Rows())
	if clocks {
		return d.ScaleDependent(profile.ClocksPerSec)
	}
	return d, nil
}
