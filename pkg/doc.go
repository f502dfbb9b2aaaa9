// Package pkg provides the libraries behind strprof.
//
// strprof generates random string corpora for benchmarking string containers
// and plots the timings measured on them. The pkg directory is organized as:
//
//  1. [dist], [corpus], [preamble] - length distributions, the string stream
//     and the moment header written ahead of a corpus
//  2. [profile], [palette], [plot] - CSV timing data, series colors and charts
//  3. [pipeline] - orchestration shared by the CLI (generate, plot, inspect)
//  4. [cache], [observability], [errors], [buildinfo] - infrastructure
//
// # Data Flow
//
//	dist.Spec ──► dist.Sampler ──► corpus.Generator ──► corpus file
//	                                                       │
//	                                          benchmark (external)
//	                                                       ▼
//	SVG/PNG/PDF ◄── plot.Render ◄── profile.Data ◄──── timings.csv
//
// # Quick Start
//
//	spec, _ := dist.Parse("uniform", []string{"1", "64"})
//	rng := dist.NewRand(42)
//	sampler, _ := dist.New(spec, rng)
//	for s := range corpus.New(sampler, rng).Take(1000) {
//	    fmt.Println(s)
//	}
//
//	data, _ := profile.ParseString(csv)
//	svg, _ := plot.RenderSVG(data, plot.Options{Title: "Iteration"})
//
// [dist]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/dist
// [corpus]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/corpus
// [preamble]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/preamble
// [profile]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/profile
// [palette]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/palette
// [plot]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/plot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/strprof/pkg/buildinfo
package pkg
