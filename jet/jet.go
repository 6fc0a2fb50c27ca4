// Package jet implements forward-mode differentiation over intervals.
//
// A Jet carries an interval enclosure of a value together with interval
// enclosures of its partial derivatives. Evaluating a function on the jets
// of a lifted box yields the range of the function and an enclosure of its
// Jacobian over the whole box, which is what the mean-value form and the
// Krawczyk operator need.
package jet

import "github.com/thalesfsp/vsolve/interval"

// Jet is a value with its gradient. A nil D is a constant.
type Jet struct {
	V interval.Interval
	D []interval.Interval
}

// Lift returns the jets of the coordinates of b: coordinate j has value
// b[j] and gradient eⱼ.
func Lift(b interval.Box) []Jet {
	jets := make([]Jet, len(b))
	for j, x := range b {
		d := make([]interval.Interval, len(b))
		for k := range d {
			d[k] = interval.Point(0)
		}
		d[j] = interval.Point(1)
		jets[j] = Jet{V: x, D: d}
	}
	return jets
}

// Const returns the constant c.
func (Jet) Const(c float64) Jet { return Jet{V: interval.Point(c)} }

// Grad returns ∂/∂xⱼ, zero for constants.
func (x Jet) Grad(j int) interval.Interval {
	if j < 0 || j >= len(x.D) {
		return interval.Point(0)
	}
	return x.D[j]
}

// Valid reports whether the value and every partial are valid.
func (x Jet) Valid() bool {
	if !x.V.Valid() {
		return false
	}
	for _, d := range x.D {
		if !d.Valid() {
			return false
		}
	}
	return true
}

func (x Jet) width(y Jet) int {
	if len(x.D) > len(y.D) {
		return len(x.D)
	}
	return len(y.D)
}

// combine returns the jet with value v and gradient a·∇x + b·∇y.
func combine(v interval.Interval, x Jet, a interval.Interval, y Jet, b interval.Interval) Jet {
	n := x.width(y)
	if n == 0 {
		return Jet{V: v}
	}
	d := make([]interval.Interval, n)
	for j := range d {
		d[j] = a.Mul(x.Grad(j)).Add(b.Mul(y.Grad(j)))
	}
	return Jet{V: v, D: d}
}

// chain returns f(x) given f(x.V) and f'(x.V).
func (x Jet) chain(v, dv interval.Interval) Jet {
	if x.D == nil {
		return Jet{V: v}
	}
	d := make([]interval.Interval, len(x.D))
	for j := range d {
		d[j] = dv.Mul(x.D[j])
	}
	return Jet{V: v, D: d}
}

var one = interval.Point(1)

func (x Jet) Add(y Jet) Jet { return combine(x.V.Add(y.V), x, one, y, one) }

func (x Jet) Sub(y Jet) Jet { return combine(x.V.Sub(y.V), x, one, y, one.Neg()) }

func (x Jet) Mul(y Jet) Jet { return combine(x.V.Mul(y.V), x, y.V, y, x.V) }

// Div uses (∇x - q·∇y)/y with q = x/y.
func (x Jet) Div(y Jet) Jet {
	q := x.V.Div(y.V)
	inv := y.V.Inv()
	return combine(q, x, inv, y, q.Mul(inv).Neg())
}

func (x Jet) Neg() Jet { return x.chain(x.V.Neg(), one.Neg()) }

func (x Jet) AddConst(c float64) Jet { return x.chain(x.V.AddConst(c), one) }

func (x Jet) MulConst(c float64) Jet { return x.chain(x.V.MulConst(c), interval.Point(c)) }

func (x Jet) Inv() Jet { return x.chain(x.V.Inv(), x.V.Sqr().Inv().Neg()) }

func (x Jet) Sqr() Jet { return x.chain(x.V.Sqr(), x.V.MulConst(2)) }

func (x Jet) Pow(n int) Jet {
	if n == 0 {
		return x.Const(1)
	}
	return x.chain(x.V.Pow(n), x.V.Pow(n-1).MulConst(float64(n)))
}

func (x Jet) Sqrt() Jet {
	s := x.V.Sqrt()
	return x.chain(s, s.Inv().MulConst(0.5))
}

func (x Jet) Exp() Jet {
	e := x.V.Exp()
	return x.chain(e, e)
}

func (x Jet) Log() Jet { return x.chain(x.V.Log(), x.V.Inv()) }

func (x Jet) Sin() Jet { return x.chain(x.V.Sin(), x.V.Cos()) }

func (x Jet) Cos() Jet { return x.chain(x.V.Cos(), x.V.Sin().Neg()) }

func (x Jet) Atan() Jet { return x.chain(x.V.Atan(), x.V.Sqr().AddConst(1).Inv()) }

// Abs uses the sign of the value where it is known and [-1, 1] otherwise,
// which still encloses every generalized gradient.
func (x Jet) Abs() Jet {
	switch {
	case x.V.Lo >= 0:
		return x
	case x.V.Hi <= 0:
		return x.Neg()
	}
	return x.chain(x.V.Abs(), interval.New(-1, 1))
}
