// Package problems is a catalogue of benchmark systems and objectives for
// the vsolve searches, written once against num.Scalar.
package problems

import (
	"sort"

	"github.com/thalesfsp/vsolve"
	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
	"github.com/thalesfsp/vsolve/jet"
	"github.com/thalesfsp/vsolve/num"
)

// Kind tells which search a problem is meant for.
type Kind string

const (
	Roots    Kind = "roots"
	Minimize Kind = "minimize"
)

// Problem is a named system with its usual search box.
type Problem struct {
	Name        string
	Kind        Kind
	Description string
	System      vsolve.System
	Lo, Hi      []float64
}

// Box returns the search box of p.
func (p Problem) Box() vsolve.Box {
	b, err := interval.NewBox(p.Lo, p.Hi)
	if err != nil {
		panic(err)
	}
	return b
}

// Circle intersects the unit circle with the diagonal.
func Circle[T num.Scalar[T]](x []T) []T {
	return []T{
		x[0].Sqr().Add(x[1].Sqr()).AddConst(-1),
		x[0].Sub(x[1]),
	}
}

// LotkaVolterra is the competing-species model; its equilibria are
// (0, 0), (0, 20000), (13333.3, 0) and (8000, 4000).
func LotkaVolterra[T num.Scalar[T]](x []T) []T {
	return []T{
		x[0].Mul(x[0].MulConst(-0.0003).Add(x[1].MulConst(-0.0004)).AddConst(4)),
		x[1].Mul(x[0].MulConst(-0.0002).Add(x[1].MulConst(-0.0001)).AddConst(2)),
	}
}

// DoubleRoot has a single root at (2, 0) where its Jacobian is singular.
func DoubleRoot[T num.Scalar[T]](x []T) []T {
	return []T{
		x[0].AddConst(-2).Sqr().Add(x[1]),
		x[1],
	}
}

// HimmelblauGradient is the gradient of Himmelblau's function. Its nine
// roots are the four minima, the maximum and the four saddle points.
func HimmelblauGradient[T num.Scalar[T]](x []T) []T {
	a := x[0].Sqr().Add(x[1]).AddConst(-11)
	b := x[0].Add(x[1].Sqr()).AddConst(-7)
	return []T{
		x[0].Mul(a).MulConst(4).Add(b.MulConst(2)),
		a.MulConst(2).Add(x[1].Mul(b).MulConst(4)),
	}
}

// TwoBumps has a shallow maximum near (2, 3) and its global minimum near
// (5, 6).
func TwoBumps[T num.Scalar[T]](x []T) []T {
	d1 := x[0].AddConst(-2).Sqr().Add(x[1].AddConst(-3).Sqr()).AddConst(1)
	d2 := x[0].AddConst(-5).Sqr().Add(x[1].AddConst(-6).Sqr()).AddConst(1)
	return []T{d1.Inv().Sub(d2.Inv())}
}

// Himmelblau has four global minima of value 0.
func Himmelblau[T num.Scalar[T]](x []T) []T {
	a := x[0].Sqr().Add(x[1]).AddConst(-11)
	b := x[0].Add(x[1].Sqr()).AddConst(-7)
	return []T{a.Sqr().Add(b.Sqr())}
}

// Rosenbrock has its global minimum 0 at (1, 1).
func Rosenbrock[T num.Scalar[T]](x []T) []T {
	a := x[0].Neg().AddConst(1)
	b := x[1].Sub(x[0].Sqr())
	return []T{a.Sqr().Add(b.Sqr().MulConst(100))}
}

// SixHumpCamel has two global minima of value -1.0316 near
// (±0.0898, ∓0.7126).
func SixHumpCamel[T num.Scalar[T]](x []T) []T {
	x2 := x[0].Sqr()
	t1 := x2.MulConst(-2.1).AddConst(4).Mul(x2).Add(x2.Sqr().Mul(x2).MulConst(1.0 / 3))
	t2 := x[0].Mul(x[1])
	t3 := x[1].Sqr().AddConst(-1).Mul(x[1].Sqr()).MulConst(4)
	return []T{t1.Add(t2).Add(t3)}
}

var catalogue = map[string]Problem{
	"circle": {
		Name:        "circle",
		Kind:        Roots,
		Description: "unit circle and diagonal, two roots",
		System:      vsolve.NewSystem(Circle[num.Real], Circle[interval.Interval], Circle[affine.Form], Circle[jet.Jet]),
		Lo:          []float64{-10, -10},
		Hi:          []float64{10, 10},
	},
	"lotka-volterra": {
		Name:        "lotka-volterra",
		Kind:        Roots,
		Description: "competing species equilibria, three on the boundary",
		System:      vsolve.NewSystem(LotkaVolterra[num.Real], LotkaVolterra[interval.Interval], LotkaVolterra[affine.Form], LotkaVolterra[jet.Jet]),
		Lo:          []float64{0, 0},
		Hi:          []float64{1e10, 1e10},
	},
	"double-root": {
		Name:        "double-root",
		Kind:        Roots,
		Description: "singular root at (2, 0)",
		System:      vsolve.NewSystem(DoubleRoot[num.Real], DoubleRoot[interval.Interval], DoubleRoot[affine.Form], DoubleRoot[jet.Jet]),
		Lo:          []float64{0, -1},
		Hi:          []float64{4, 1},
	},
	"himmelblau-gradient": {
		Name:        "himmelblau-gradient",
		Kind:        Roots,
		Description: "stationary points of Himmelblau's function, nine roots",
		System:      vsolve.NewSystem(HimmelblauGradient[num.Real], HimmelblauGradient[interval.Interval], HimmelblauGradient[affine.Form], HimmelblauGradient[jet.Jet]),
		Lo:          []float64{-5, -5},
		Hi:          []float64{5, 5},
	},
	"two-bumps": {
		Name:        "two-bumps",
		Kind:        Minimize,
		Description: "difference of two bumps, minimum near (5, 6)",
		System:      vsolve.NewSystem(TwoBumps[num.Real], TwoBumps[interval.Interval], TwoBumps[affine.Form], TwoBumps[jet.Jet]),
		Lo:          []float64{0, 0},
		Hi:          []float64{10, 10},
	},
	"himmelblau": {
		Name:        "himmelblau",
		Kind:        Minimize,
		Description: "four global minima of value 0",
		System:      vsolve.NewSystem(Himmelblau[num.Real], Himmelblau[interval.Interval], Himmelblau[affine.Form], Himmelblau[jet.Jet]),
		Lo:          []float64{-5, -5},
		Hi:          []float64{5, 5},
	},
	"rosenbrock": {
		Name:        "rosenbrock",
		Kind:        Minimize,
		Description: "banana valley, minimum 0 at (1, 1)",
		System:      vsolve.NewSystem(Rosenbrock[num.Real], Rosenbrock[interval.Interval], Rosenbrock[affine.Form], Rosenbrock[jet.Jet]),
		Lo:          []float64{-2, -1},
		Hi:          []float64{2, 3},
	},
	"six-hump-camel": {
		Name:        "six-hump-camel",
		Kind:        Minimize,
		Description: "two global minima of value -1.0316",
		System:      vsolve.NewSystem(SixHumpCamel[num.Real], SixHumpCamel[interval.Interval], SixHumpCamel[affine.Form], SixHumpCamel[jet.Jet]),
		Lo:          []float64{-3, -2},
		Hi:          []float64{3, 2},
	},
}

// Lookup returns the problem called name.
func Lookup(name string) (Problem, bool) {
	p, ok := catalogue[name]
	return p, ok
}

// All returns every problem, sorted by name.
func All() []Problem {
	all := make([]Problem, 0, len(catalogue))
	for _, p := range catalogue {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
