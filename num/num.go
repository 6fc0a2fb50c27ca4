// Package num defines the arithmetic interface shared by every numeric
// representation the solver evaluates a problem in, and the plain
// floating-point representation Real.
//
// A problem is written once as a generic function over Scalar:
//
//	func circle[T num.Scalar[T]](x []T) []T {
//	    return []T{
//	        x[0].Sqr().Add(x[1].Sqr()).AddConst(-1),
//	        x[0].Sub(x[1]),
//	    }
//	}
//
// and instantiated for num.Real, interval.Interval, affine.Form and jet.Jet.
package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of operations a problem function may use. Every method
// returns a new value; receivers are never modified.
//
// Domain errors (square root of a negative range, logarithm of a
// non-positive range, division by a range containing zero) do not panic:
// they produce a value whose Valid method reports false, and that state
// propagates through further arithmetic.
type Scalar[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Neg() T
	Inv() T
	Sqr() T
	Pow(n int) T
	Sqrt() T
	Exp() T
	Log() T
	Sin() T
	Cos() T
	Atan() T
	Abs() T

	// AddConst and MulConst combine the receiver with a constant.
	AddConst(c float64) T
	MulConst(c float64) T

	// Const returns c in the representation (and evaluation context) of
	// the receiver.
	Const(c float64) T

	Valid() bool
}

// Func is a vector function evaluated in one representation.
type Func[T any] func(x []T) []T

// Real is the plain floating-point representation. It carries no
// enclosure guarantee and is only used for non-rigorous work such as local
// search.
type Real float64

func (x Real) Add(y Real) Real         { return x + y }
func (x Real) Sub(y Real) Real         { return x - y }
func (x Real) Mul(y Real) Real         { return x * y }
func (x Real) Neg() Real               { return -x }
func (x Real) Sqr() Real               { return x * x }
func (x Real) AddConst(c float64) Real { return x + Real(c) }
func (x Real) MulConst(c float64) Real { return x * Real(c) }
func (Real) Const(c float64) Real      { return Real(c) }
func (x Real) Exp() Real               { return Real(math.Exp(float64(x))) }
func (x Real) Sin() Real               { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real               { return Real(math.Cos(float64(x))) }
func (x Real) Atan() Real              { return Real(math.Atan(float64(x))) }
func (x Real) Abs() Real               { return Real(math.Abs(float64(x))) }
func (x Real) Pow(n int) Real          { return Real(math.Pow(float64(x), float64(n))) }

// Div returns NaN for a zero divisor, matching the other representations
// which treat it as a domain error.
func (x Real) Div(y Real) Real {
	if y == 0 {
		return Real(math.NaN())
	}
	return x / y
}

func (x Real) Inv() Real { return Real(1).Div(x) }

func (x Real) Sqrt() Real {
	if x < 0 {
		return Real(math.NaN())
	}
	return Real(math.Sqrt(float64(x)))
}

func (x Real) Log() Real {
	if x <= 0 {
		return Real(math.NaN())
	}
	return Real(math.Log(float64(x)))
}

// Valid reports whether x is finite.
func (x Real) Valid() bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// Lift converts a slice of any integer or floating-point type into Reals.
func Lift[T constraints.Integer | constraints.Float](x []T) []Real {
	r := make([]Real, len(x))
	for i, v := range x {
		r[i] = Real(v)
	}
	return r
}

// Floats converts Reals back to float64.
func Floats(x []Real) []float64 {
	f := make([]float64, len(x))
	for i, v := range x {
		f[i] = float64(v)
	}
	return f
}
