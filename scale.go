package plotlib

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDegenerate        = errors.New("degenerate interval")
	ErrUnknownCategory   = errors.New("category not found")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrNoCategories      = errors.New("no categories")
	ErrKindMismatch      = errors.New("representation does not match view axes")
	ErrNonFinite         = errors.New("non-finite data point")
	ErrNoData            = errors.New("no data points")
	ErrInvalidBins       = errors.New("invalid bins")
	ErrNotIncreasing     = errors.New("x values not strictly increasing")
	ErrInvalidSummary    = errors.New("invalid five-number summary")
	ErrIndex             = errors.New("index out of range")
)

// Range is a closed interval. It is used both for data domains and for
// output ranges (pixels or character cells). F can be greater than T when
// an output is reversed.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Reverse() Range {
	return Range{
		F: r.T,
		T: r.F,
	}
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min() && v <= r.Max()
}

func (r Range) Overlaps(other Range) bool {
	return other.Max() >= r.Min() && other.Min() <= r.Max()
}

func (r Range) Union(other Range) Range {
	return Range{
		F: math.Min(r.Min(), other.Min()),
		T: math.Max(r.Max(), other.Max()),
	}
}

func (r Range) finite() bool {
	return isFinite(r.F) && isFinite(r.T)
}

func (r Range) degenerate() bool {
	return !r.finite() || r.Len() == 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.F, r.T)
}

// Scale maps a value of its domain linearly onto its output range. Values
// outside of the domain are extrapolated, never clamped.
type Scale struct {
	domain Range
	output Range
}

func NewScale(domain, output Range) (Scale, error) {
	var s Scale
	if domain.degenerate() {
		return s, fmt.Errorf("%w: domain %s", ErrDegenerate, domain)
	}
	if output.degenerate() {
		return s, fmt.Errorf("%w: output %s", ErrDegenerate, output)
	}
	s.domain = domain
	s.output = output
	return s, nil
}

func (s Scale) Map(v float64) float64 {
	return s.output.F + (v-s.domain.F)/s.domain.Len()*s.output.Len()
}

func (s Scale) Unmap(p float64) float64 {
	return s.domain.F + (p-s.output.F)/s.output.Len()*s.domain.Len()
}

func (s Scale) Domain() Range {
	return s.domain
}

func (s Scale) Output() Range {
	return s.output
}

// Space is the size of one domain unit in output units.
func (s Scale) Space() float64 {
	return s.output.Len() / s.domain.Len()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func checkFloats(fs ...float64) error {
	for _, f := range fs {
		if !isFinite(f) {
			return fmt.Errorf("%w: %g", ErrNonFinite, f)
		}
	}
	return nil
}
