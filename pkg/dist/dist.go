package dist

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matzehuels/strprof/pkg/errors"
)

// Kind names one of the supported length distributions.
type Kind string

const (
	KindIdentical Kind = "identical"
	KindUniform   Kind = "uniform"
	KindBinomial  Kind = "binomial"
)

// Kinds lists every supported kind in CLI order.
var Kinds = []Kind{KindIdentical, KindUniform, KindBinomial}

// Spec is a validated-on-demand description of a length distribution.
// The set of implementations is closed: [Identical], [Uniform] and [Binomial].
type Spec interface {
	// Kind returns the distribution kind.
	Kind() Kind
	// Validate reports out-of-domain parameters as INVALID_PARAMETER errors.
	Validate() error
	// Params returns the positional parameters in CLI order.
	Params() []string

	sealed()
}

// Identical always yields the same length.
type Identical struct {
	Length int
}

// Uniform yields lengths uniformly from the closed range [Lower, Upper].
type Uniform struct {
	Lower int
	Upper int
}

// Binomial yields lengths from Binomial(Trials, P).
type Binomial struct {
	Trials int
	P      float64
}

func (Identical) Kind() Kind { return KindIdentical }
func (Uniform) Kind() Kind   { return KindUniform }
func (Binomial) Kind() Kind  { return KindBinomial }

func (Identical) sealed() {}
func (Uniform) sealed()   {}
func (Binomial) sealed()  {}

func (s Identical) Validate() error {
	return errors.ValidatePositive("identical length", s.Length)
}

func (s Uniform) Validate() error {
	if err := errors.ValidatePositive("uniform lower bound", s.Lower); err != nil {
		return err
	}
	if err := errors.ValidatePositive("uniform upper bound", s.Upper); err != nil {
		return err
	}
	if s.Upper <= s.Lower {
		return errors.New(errors.ErrCodeInvalidParameter,
			"uniform upper bound must exceed lower bound, got [%d, %d]", s.Lower, s.Upper)
	}
	return nil
}

func (s Binomial) Validate() error {
	if err := errors.ValidatePositive("binomial trials", s.Trials); err != nil {
		return err
	}
	return errors.ValidateOpenUnit("binomial success probability", s.P)
}

func (s Identical) Params() []string { return []string{strconv.Itoa(s.Length)} }
func (s Uniform) Params() []string {
	return []string{strconv.Itoa(s.Lower), strconv.Itoa(s.Upper)}
}
func (s Binomial) Params() []string {
	return []string{strconv.Itoa(s.Trials), strconv.FormatFloat(s.P, 'g', -1, 64)}
}

// Arity returns the number of positional parameters kind expects, or -1 for
// an unknown kind.
func Arity(kind Kind) int {
	switch kind {
	case KindIdentical:
		return 1
	case KindUniform, KindBinomial:
		return 2
	}
	return -1
}

// Parse builds a Spec from a kind name and its positional arguments, as they
// appear on the command line. The returned Spec is validated.
func Parse(kind string, args []string) (Spec, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(kind)))
	n := Arity(k)
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"unknown distribution %q (want identical, uniform or binomial)", kind)
	}
	if len(args) != n {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"%s expects %d parameter(s), got %d", k, n, len(args))
	}

	var spec Spec
	switch k {
	case KindIdentical:
		length, err := parseInt("length", args[0])
		if err != nil {
			return nil, err
		}
		spec = Identical{Length: length}
	case KindUniform:
		lower, err := parseInt("lower bound", args[0])
		if err != nil {
			return nil, err
		}
		upper, err := parseInt("upper bound", args[1])
		if err != nil {
			return nil, err
		}
		spec = Uniform{Lower: lower, Upper: upper}
	case KindBinomial:
		trials, err := parseInt("trials", args[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidParameter, err, "success probability %q is not a number", args[1])
		}
		spec = Binomial{Trials: trials, P: p}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidParameter, err, "%s %q is not an integer", name, s)
	}
	return v, nil
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sampler draws lengths from a validated Spec.
//
// A Sampler is not safe for concurrent use: it shares its rng with whatever
// else the caller hands that rng to.
type Sampler struct {
	spec     Spec
	rng      *rand.Rand
	binomial distuv.Binomial
}

// New validates spec and returns a sampler drawing from rng.
// A nil rng is replaced by a randomly seeded one.
func New(spec Spec, rng *rand.Rand) (*Sampler, error) {
	if spec == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "distribution is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}

	s := &Sampler{spec: spec, rng: rng}
	if b, ok := spec.(Binomial); ok {
		s.binomial = distuv.Binomial{N: float64(b.Trials), P: b.P, Src: rng}
	}
	return s, nil
}

// Spec returns the distribution the sampler was built from.
func (s *Sampler) Spec() Spec { return s.spec }

// Sample draws one length.
func (s *Sampler) Sample() int {
	switch d := s.spec.(type) {
	case Identical:
		return d.Length
	case Uniform:
		return d.Lower + s.rng.IntN(d.Upper-d.Lower+1)
	case Binomial:
		return int(s.binomial.Rand())
	}
	panic("dist: unreachable spec type")
}
