// Package corpus turns a length distribution into an unbounded stream of
// random alphanumeric strings.
//
// Each element is built by drawing one length L from a [LengthSampler] and
// then L characters independently and uniformly, with replacement, from
// [Alphabet]. Elements are independent of each other. The stream never ends
// on its own; callers bound it with [Generator.Take] or by breaking out of a
// range over [Generator.All].
package corpus

import (
	"iter"
	"math/rand/v2"
	"strings"
)

// Alphabet is the 62-symbol character set generated strings are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// LengthSampler yields one string length per call.
type LengthSampler interface {
	Sample() int
}

// InAlphabet reports whether every byte of s belongs to [Alphabet].
func InAlphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

// RandomString returns a string of exactly n characters drawn from [Alphabet].
// n <= 0 yields the empty string.
func RandomString(rng *rand.Rand, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(Alphabet[rng.IntN(len(Alphabet))])
	}
	return b.String()
}

// Generator produces random strings whose lengths follow a LengthSampler.
//
// The generator consumes its rng as it goes: iterating twice continues the
// stream rather than replaying it. Build a new Generator over a freshly
// seeded rng to reproduce a run.
type Generator struct {
	lengths LengthSampler
	rng     *rand.Rand
}

// New returns a generator drawing lengths from lengths and characters from rng.
// rng should be the same handle the sampler was built with so a single seed
// determines the whole stream.
func New(lengths LengthSampler, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{lengths: lengths, rng: rng}
}

// Next returns the next string in the stream.
func (g *Generator) Next() string {
	return RandomString(g.rng, g.lengths.Sample())
}

// All returns the infinite stream of strings.
func (g *Generator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Take returns a sequence of exactly n strings (none when n <= 0).
func (g *Generator) Take(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < n; i++ {
			if !yield(g.Next()) {
				return
			}
		}
	}
}
