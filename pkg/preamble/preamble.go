// Package preamble computes the closed-form moments of a length distribution
// and renders them as the one-line header written ahead of a generated corpus.
//
// The header has the form
//
//	# <count> <mean> <variance>
//
// and is split on whitespace by consumers. Moments are theoretical, never
// estimated from samples:
//
//   - identical(L):   mean L, variance 0
//   - uniform(a, b):  mean (a+b)/2, variance ((b-a+1)^2 - 1)/12
//   - binomial(n, p): mean n*p, variance n*p*(1-p)
//
// The identical kind renders integers; the others render the shortest decimal
// that round-trips, always with a fractional part ("3.0", not "3").
package preamble

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/strprof/pkg/dist"
	"github.com/matzehuels/strprof/pkg/errors"
)

// Prefix starts every preamble line.
const Prefix = "#"

// Stats holds the declared size and moments of a corpus.
type Stats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`

	// Integral renders Mean and Variance as integers. Set for identical lengths.
	Integral bool `json:"-"`
}

// Compute derives Stats for count strings drawn from spec.
func Compute(count int, spec dist.Spec) (Stats, error) {
	if err := errors.ValidatePositive("count", count); err != nil {
		return Stats{}, err
	}
	if spec == nil {
		return Stats{}, errors.New(errors.ErrCodeInvalidParameter, "distribution is required")
	}
	if err := spec.Validate(); err != nil {
		return Stats{}, err
	}

	mean, variance := Moments(spec)
	_, integral := spec.(dist.Identical)
	return Stats{Count: count, Mean: mean, Variance: variance, Integral: integral}, nil
}

// Moments returns the theoretical mean and variance of spec. spec is assumed valid.
func Moments(spec dist.Spec) (mean, variance float64) {
	switch d := spec.(type) {
	case dist.Identical:
		return float64(d.Length), 0
	case dist.Uniform:
		a, b := float64(d.Lower), float64(d.Upper)
		width := b - a + 1
		return (a + b) / 2, (width*width - 1) / 12
	case dist.Binomial:
		n := float64(d.Trials)
		return n * d.P, n * d.P * (1 - d.P)
	}
	return math.NaN(), math.NaN()
}

// Line is a shorthand for Compute followed by String.
func Line(count int, spec dist.Spec) (string, error) {
	s, err := Compute(count, spec)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// StdDev returns the square root of the variance.
func (s Stats) StdDev() float64 { return math.Sqrt(s.Variance) }

// String renders the preamble line without a trailing newline.
func (s Stats) String() string {
	if s.Integral {
		return fmt.Sprintf("%s %d %d %d", Prefix, s.Count, int64(s.Mean), int64(s.Variance))
	}
	return fmt.Sprintf("%s %d %s %s", Prefix, s.Count, FormatFloat(s.Mean), FormatFloat(s.Variance))
}

// IsPreamble reports whether line looks like a preamble rather than a corpus string.
// Corpus strings never contain '#'.
func IsPreamble(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Prefix)
}

// Parse reads a preamble line back into Stats.
func Parse(line string) (Stats, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != Prefix {
		return Stats{}, errors.New(errors.ErrCodeMalformedData,
			"preamble must be %q followed by count, mean and variance, got %q", Prefix, line)
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil || count <= 0 {
		return Stats{}, errors.New(errors.ErrCodeMalformedData, "preamble count %q is not a positive integer", fields[1])
	}
	mean, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Stats{}, errors.Wrap(errors.ErrCodeMalformedData, err, "preamble mean %q", fields[2])
	}
	variance, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Stats{}, errors.Wrap(errors.ErrCodeMalformedData, err, "preamble variance %q", fields[3])
	}

	integral := !strings.ContainsAny(fields[2]+fields[3], ".eEnN")
	return Stats{Count: count, Mean: mean, Variance: variance, Integral: integral}, nil
}

// FormatFloat renders f as the shortest decimal that parses back to f.
// Integral values keep a ".0" suffix, and magnitudes >= 1e16 or < 1e-4 switch
// to exponent notation with at least two exponent digits ("1e-05", "1e+16").
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		digits := strings.TrimLeft(exp[1:], "0")
		if len(digits) < 2 {
			digits = strings.Repeat("0", 2-len(digits)) + digits
		}
		return mant + "e" + string(sign) + digits
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
