// Package dist implements the string length distributions used to build
// benchmark corpora.
//
// # Distributions
//
// Exactly three kinds are supported:
//
//   - [Identical]: every string has the same length (no variability)
//   - [Uniform]: discrete uniform over the closed range [Lower, Upper]
//   - [Binomial]: Binomial(Trials, P), a cheap stand-in for a bell-shaped
//     length distribution when Trials is large
//
// A [Spec] is a plain value. [New] validates it and returns a [Sampler] that
// draws from an explicit *rand.Rand, so seeding the rng makes a run
// reproducible:
//
//	spec, err := dist.Parse("uniform", []string{"2", "4"})
//	if err != nil {
//	    return err // INVALID_PARAMETER
//	}
//	s, err := dist.New(spec, dist.NewRand(42))
//	n := s.Sample() // 2, 3 or 4
//
// Invalid parameters are reported eagerly as INVALID_PARAMETER errors from
// [github.com/matzehuels/strprof/pkg/errors]; no partially built sampler is
// ever returned.
package dist
