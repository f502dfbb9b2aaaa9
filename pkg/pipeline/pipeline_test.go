package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/strprof/pkg/cache"
	"github.com/matzehuels/strprof/pkg/dist"
	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/plot"
)

const timings = `block_size,stringv,array
1,100,200
2,150,260
4,210,330
`

func testRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	return NewRunner(c, nil, log.New(io.Discard))
}

func mustSpec(t *testing.T, kind string, args ...string) dist.Spec {
	t.Helper()
	spec, err := dist.Parse(kind, args)
	if err != nil {
		t.Fatalf("dist.Parse(%s, %v): %v", kind, args, err)
	}
	return spec
}

func TestGenerate(t *testing.T) {
	r := testRunner(t, nil)
	var buf bytes.Buffer
	res, err := r.Generate(context.Background(), &buf, GenerateOptions{
		Spec:     mustSpec(t, "uniform", "2", "4"),
		Count:    5,
		Seed:     7,
		SeedSet:  true,
		Preamble: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want preamble + 5", len(lines))
	}
	if lines[0] != "# 5 3.0 0.6666666666666666" {
		t.Errorf("preamble = %q", lines[0])
	}
	for _, l := range lines[1:] {
		if len(l) < 2 || len(l) > 4 {
			t.Errorf("line %q has length outside [2, 4]", l)
		}
	}
	if res.Written != 5 || res.Seed != 7 || res.RunID == "" {
		t.Errorf("result = %+v", res)
	}
	if res.Kind != dist.KindUniform {
		t.Errorf("kind = %s", res.Kind)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	r := testRunner(t, nil)
	run := func() string {
		var buf bytes.Buffer
		_, err := r.Generate(context.Background(), &buf, GenerateOptions{
			Spec:    mustSpec(t, "binomial", "20", "0.5"),
			Count:   50,
			Seed:    42,
			SeedSet: true,
		})
		if err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	if a, b := run(), run(); a != b {
		t.Error("equal seeds should produce identical corpora")
	}
}

func TestGenerateRandomSeedRecorded(t *testing.T) {
	r := testRunner(t, nil)
	var first bytes.Buffer
	res, err := r.Generate(context.Background(), &first, GenerateOptions{
		Spec:  mustSpec(t, "uniform", "1", "10"),
		Count: 20,
	})
	if err != nil {
		t.Fatal(err)
	}

	var replay bytes.Buffer
	if _, err := r.Generate(context.Background(), &replay, GenerateOptions{
		Spec:    mustSpec(t, "uniform", "1", "10"),
		Count:   20,
		Seed:    res.Seed,
		SeedSet: true,
	}); err != nil {
		t.Fatal(err)
	}
	if first.String() != replay.String() {
		t.Error("replaying the recorded seed should reproduce the corpus")
	}
}

func TestGenerateInvalid(t *testing.T) {
	r := testRunner(t, nil)
	tests := []struct {
		name string
		opts GenerateOptions
	}{
		{"no spec", GenerateOptions{Count: 1}},
		{"zero count", GenerateOptions{Spec: dist.Identical{Length: 3}, Count: 0}},
		{"bad spec", GenerateOptions{Spec: dist.Uniform{Lower: 5, Upper: 3}, Count: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := r.Generate(context.Background(), &buf, tt.opts)
			if !errors.IsInvalidParameter(err) {
				t.Errorf("err = %v, want INVALID_PARAMETER", err)
			}
			if buf.Len() != 0 {
				t.Error("nothing should be written on invalid options")
			}
		})
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	res, err := testRunner(t, nil).Generate(ctx, &buf, GenerateOptions{
		Spec:  dist.Identical{Length: 3},
		Count: 10,
	})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res.Written != 0 {
		t.Errorf("written = %d after cancel", res.Written)
	}
}

func TestPlotSVGCached(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := testRunner(t, c)
	opts := PlotOptions{
		Formats: []string{plot.FormatSVG},
		Options: plot.Options{Title: "Iteration", XLabel: "block size", YLabel: "s"},
		Clocks:  true,
	}

	first, err := r.Plot(context.Background(), []byte(timings), opts)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if first.CacheHit {
		t.Error("first render should miss the cache")
	}
	svg := string(first.Artifacts[plot.FormatSVG])
	if !strings.Contains(svg, "<svg") || strings.Count(svg, `class="series"`) != 2 {
		t.Errorf("unexpected svg:\n%s", svg)
	}

	second, err := r.Plot(context.Background(), []byte(timings), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second render should hit the cache")
	}
	if !bytes.Equal(first.Artifacts[plot.FormatSVG], second.Artifacts[plot.FormatSVG]) {
		t.Error("cached artifact differs from rendered one")
	}

	opts.Refresh = true
	third, err := r.Plot(context.Background(), []byte(timings), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestPlotErrors(t *testing.T) {
	r := testRunner(t, nil)
	ctx := context.Background()

	_, err := r.Plot(ctx, []byte(timings), PlotOptions{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("gif: err = %v, want INVALID_FORMAT", err)
	}

	_, err = r.Plot(ctx, []byte("a,b\n1,x\n"), PlotOptions{})
	if !errors.IsMalformedData(err) {
		t.Errorf("bad csv: err = %v, want MALFORMED_DATA", err)
	}
}

func TestSummarize(t *testing.T) {
	sums, err := testRunner(t, nil).Summarize(context.Background(), []byte(timings), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 {
		t.Fatalf("got %d summaries, want 2", len(sums))
	}
	if sums[0].Label != "stringv" || sums[0].Max != 210e-6 {
		t.Errorf("summary[0] = %+v", sums[0])
	}
}

func TestInspectRoundTrip(t *testing.T) {
	r := testRunner(t, nil)
	var buf bytes.Buffer
	if _, err := r.Generate(context.Background(), &buf, GenerateOptions{
		Spec:     dist.Identical{Length: 6},
		Count:    12,
		Preamble: true,
	}); err != nil {
		t.Fatal(err)
	}

	res, err := r.Inspect(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if res.Declared == nil || res.Declared.Count != 12 {
		t.Fatalf("declared = %+v", res.Declared)
	}
	if !res.CountMatches() {
		t.Errorf("lines = %d, declared %d", res.Lines, res.Declared.Count)
	}
	if res.Mean != 6 || res.Variance != 0 || res.MinLen != 6 || res.MaxLen != 6 {
		t.Errorf("observed = %+v", res)
	}
}

func TestInspect(t *testing.T) {
	r := testRunner(t, nil)
	tests := []struct {
		name      string
		input     string
		wantLines int
		wantErr   bool
	}{
		{"no preamble", "ab\nabcd\n", 2, false},
		{"empty strings", "\n\nabc\n", 3, false},
		{"empty input", "", 0, false},
		{"crlf line endings", "# 2 3 1\r\nab\r\nabcd\r\n", 2, false},
		{"bare carriage return", "ab\ra\n", 0, true},
		{"bad character", "ab\na-b\n", 0, true},
		{"late preamble", "ab\n# 1 2 0\n", 0, true},
		{"bad preamble", "# x y z\nab\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Inspect(context.Background(), strings.NewReader(tt.input))
			if tt.wantErr {
				if !errors.IsMalformedData(err) {
					t.Errorf("err = %v, want MALFORMED_DATA", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if res.Lines != tt.wantLines {
				t.Errorf("lines = %d, want %d", res.Lines, tt.wantLines)
			}
		})
	}
}

func TestPlotOptionsDefaults(t *testing.T) {
	var opts PlotOptions
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != plot.FormatSVG {
		t.Errorf("default formats = %v", opts.Formats)
	}
	if opts.ArtifactKeyOpts("svg") == opts.ArtifactKeyOpts("png") {
		t.Error("key options should differ by format")
	}
}
