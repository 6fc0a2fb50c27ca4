package vsolve

import (
	"fmt"

	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
	"github.com/thalesfsp/vsolve/jet"
	"github.com/thalesfsp/vsolve/num"
)

// System bundles the representations of one function F: Rⁿ → Rᵐ. They must
// all compute the same mathematical function; the simplest way to guarantee
// that is to instantiate one generic function four times, see NewSystem.
type System struct {
	Real     num.Func[num.Real]
	Interval num.Func[interval.Interval]
	Affine   num.Func[affine.Form]
	Jet      num.Func[jet.Jet]
}

// NewSystem returns the System of the given representations.
//
// Usage example:
//
//	func f[T num.Scalar[T]](x []T) []T {
//	    return []T{x[0].Sqr().Sub(x[1]), x[0].Add(x[1]).AddConst(-2)}
//	}
//
//	sys := NewSystem(f[num.Real], f[interval.Interval], f[affine.Form], f[jet.Jet])
func NewSystem(
	point num.Func[num.Real],
	iv num.Func[interval.Interval],
	af num.Func[affine.Form],
	jt num.Func[jet.Jet],
) System {
	return System{Real: point, Interval: iv, Affine: af, Jet: jt}
}

func (s System) validate() error {
	if s.Real == nil || s.Interval == nil || s.Affine == nil || s.Jet == nil {
		return ErrNilFunction
	}
	return nil
}

// Negate returns the system computing -F.
func (s System) Negate() System {
	return System{
		Real:     negate(s.Real),
		Interval: negate(s.Interval),
		Affine:   negate(s.Affine),
		Jet:      negate(s.Jet),
	}
}

func negate[T num.Scalar[T]](f num.Func[T]) num.Func[T] {
	if f == nil {
		return nil
	}
	return func(x []T) []T {
		out := f(x)
		neg := make([]T, len(out))
		for i, v := range out {
			neg[i] = v.Neg()
		}
		return neg
	}
}

// checkOutputs fails with ErrDimension when out does not have want entries
// and with ErrDomain when one of them is invalid.
func checkOutputs[T num.Scalar[T]](op string, out []T, want int) error {
	if len(out) != want {
		return fmt.Errorf("%s: got %d outputs, want %d: %w", op, len(out), want, ErrDimension)
	}
	for i, v := range out {
		if !v.Valid() {
			return fmt.Errorf("%s: output %d: %w", op, i, ErrDomain)
		}
	}
	return nil
}

func (s System) evalInterval(b Box, m int) ([]interval.Interval, error) {
	out := s.Interval(append([]interval.Interval(nil), b...))
	if err := checkOutputs("interval evaluation", out, m); err != nil {
		return nil, err
	}
	return out, nil
}

// evalPoint evaluates F rigorously at p.
func (s System) evalPoint(p []float64, m int) ([]interval.Interval, error) {
	return s.evalInterval(interval.PointBox(p), m)
}

func (s System) evalAffine(b Box, m int) ([]affine.Form, error) {
	out := s.Affine(affine.Lift(b))
	if err := checkOutputs("affine evaluation", out, m); err != nil {
		return nil, err
	}
	return out, nil
}

func (s System) evalJet(b Box, m int) ([]jet.Jet, error) {
	out := s.Jet(jet.Lift(b))
	if err := checkOutputs("jet evaluation", out, m); err != nil {
		return nil, err
	}
	return out, nil
}

func (s System) evalReal(p []float64, m int) ([]float64, error) {
	out := s.Real(num.Lift(p))
	if err := checkOutputs("evaluation", out, m); err != nil {
		return nil, err
	}
	return num.Floats(out), nil
}

// jacobian extracts the interval Jacobian from the jets of F.
func jacobian(jets []jet.Jet, n int) [][]interval.Interval {
	jac := make([][]interval.Interval, len(jets))
	for i, j := range jets {
		jac[i] = make([]interval.Interval, n)
		for k := range jac[i] {
			jac[i][k] = j.Grad(k)
		}
	}
	return jac
}
