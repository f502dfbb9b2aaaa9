package pipeline

import (
	"bufio"
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/strprof/pkg/corpus"
	"github.com/matzehuels/strprof/pkg/dist"
	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/observability"
	"github.com/matzehuels/strprof/pkg/preamble"
)

// Generate writes opts.Count newline-terminated strings to w, preceded by the
// preamble line when requested. A single seeded rng drives both the length
// draws and the characters, so equal seeds produce byte-identical output.
//
// Cancelling ctx stops generation between lines; the lines already written
// stay written and ctx.Err() is returned.
func (r *Runner) Generate(ctx context.Context, w io.Writer, opts GenerateOptions) (res *GenerateResult, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	stats, err := preamble.Compute(opts.Count, opts.Spec)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if !opts.SeedSet {
		seed = rand.Uint64()
	}
	rng := dist.NewRand(seed)
	sampler, err := dist.New(opts.Spec, rng)
	if err != nil {
		return nil, err
	}

	res = &GenerateResult{
		RunID:    uuid.NewString(),
		Kind:     opts.Spec.Kind(),
		Params:   opts.Spec.Params(),
		Seed:     seed,
		Count:    opts.Count,
		Preamble: opts.Preamble,
		Stats:    stats,
	}

	start := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, string(res.Kind), opts.Count)
	defer func() {
		res.Duration = time.Since(start)
		observability.Pipeline().OnGenerateComplete(ctx, string(res.Kind), res.Written, res.Duration, err)
	}()

	r.Logger.Debug("generating corpus",
		"run", res.RunID,
		"kind", res.Kind,
		"params", res.Params,
		"count", opts.Count,
		"seed", seed)

	bw := bufio.NewWriter(w)
	if opts.Preamble {
		if _, err := bw.WriteString(stats.String() + "\n"); err != nil {
			return res, errors.Wrap(errors.ErrCodeInternal, err, "write preamble")
		}
	}

	for s := range corpus.New(sampler, rng).Take(opts.Count) {
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return res, err
		}
		if _, err := bw.WriteString(s); err != nil {
			return res, errors.Wrap(errors.ErrCodeInternal, err, "write line %d", res.Written+1)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return res, errors.Wrap(errors.ErrCodeInternal, err, "write line %d", res.Written+1)
		}
		res.Written++
	}
	if err := bw.Flush(); err != nil {
		return res, errors.Wrap(errors.ErrCodeInternal, err, "flush output")
	}

	r.Logger.Info("generated corpus",
		"kind", res.Kind,
		"count", res.Written,
		"mean", stats.Mean,
		"variance", stats.Variance,
		"duration", time.Since(start))
	return res, nil
}
