package affine

import "github.com/thalesfsp/vsolve/interval"

type unary func(interval.Interval) interval.Interval

// linearize approximates f around the center m of x by
//
//	f(t) ∈ α·(t - m) + ζ,   t ∈ range(x)
//
// with α ≈ f'(m) and the interval ζ = f(m) + (f'(m) - α)(t - m) +
// ½·f″(range(x))·(t - m)², which is a rigorous Taylor enclosure. The plain
// interval image of the range is used as a noise-free form instead when the
// linearization cannot be formed, when the remainder ζ alone is as wide as
// the image, or when x has no noise terms and the linearization is looser.
// Forms with noise terms otherwise keep them even if their own range is a
// little wider than the image: the slopes are what the Krawczyk
// preconditioner is built from.
func (x Form) linearize(f, d1, d2 unary) Form {
	if !x.Valid() {
		return Form{bad: true}
	}
	rng := x.Range()
	image := f(rng)
	if !image.Valid() {
		return Form{bad: true}
	}
	plain := FromInterval(image)
	plain.ctx = x.ctx

	m := interval.Point(x.c)
	fm, dm, dd := f(m), d1(m), d2(rng)
	if !fm.Valid() || !dm.Valid() || !dd.Valid() {
		return plain
	}
	alpha := dm.Mid()
	t := rng.Sub(m)
	zeta := fm.Add(dm.Sub(interval.Point(alpha)).Mul(t)).Add(dd.Mul(t.Sqr()).MulConst(0.5))

	lin := x.AddConst(-x.c).MulConst(alpha).addInterval(zeta)
	switch {
	case !lin.Valid(), zeta.Rad() >= image.Rad():
		return plain
	case !x.correlated() && lin.Range().Width() > image.Width():
		return plain
	}
	return lin
}

// correlated reports whether x depends on some noise symbol.
func (x Form) correlated() bool {
	for _, v := range x.a {
		if v != 0 {
			return true
		}
	}
	return false
}

// Sqr returns x².
func (x Form) Sqr() Form {
	return x.linearize(
		interval.Interval.Sqr,
		func(t interval.Interval) interval.Interval { return t.MulConst(2) },
		func(interval.Interval) interval.Interval { return interval.Point(2) },
	)
}

// Pow returns xⁿ.
func (x Form) Pow(n int) Form {
	switch {
	case n == 0:
		return x.Const(1)
	case n == 1:
		return x
	case n == 2:
		return x.Sqr()
	case n < 0:
		return x.Pow(-n).Inv()
	}
	return x.linearize(
		func(t interval.Interval) interval.Interval { return t.Pow(n) },
		func(t interval.Interval) interval.Interval { return t.Pow(n - 1).MulConst(float64(n)) },
		func(t interval.Interval) interval.Interval { return t.Pow(n - 2).MulConst(float64(n * (n - 1))) },
	)
}

// Inv returns 1/x. The result is invalid when the range of x contains zero.
func (x Form) Inv() Form {
	if x.Valid() && x.Range().ContainsZero() {
		return Form{bad: true}
	}
	return x.linearize(
		interval.Interval.Inv,
		func(t interval.Interval) interval.Interval { return t.Sqr().Inv().Neg() },
		func(t interval.Interval) interval.Interval { return t.Pow(3).Inv().MulConst(2) },
	)
}

// Sqrt returns √x. The result is invalid when the range of x reaches below
// zero.
func (x Form) Sqrt() Form {
	return x.linearize(
		interval.Interval.Sqrt,
		func(t interval.Interval) interval.Interval { return t.Sqrt().Inv().MulConst(0.5) },
		func(t interval.Interval) interval.Interval { return t.Mul(t.Sqrt()).Inv().MulConst(-0.25) },
	)
}

// Exp returns eˣ.
func (x Form) Exp() Form {
	return x.linearize(interval.Interval.Exp, interval.Interval.Exp, interval.Interval.Exp)
}

// Log returns ln x.
func (x Form) Log() Form {
	return x.linearize(
		interval.Interval.Log,
		interval.Interval.Inv,
		func(t interval.Interval) interval.Interval { return t.Sqr().Inv().Neg() },
	)
}

// Sin returns sin x.
func (x Form) Sin() Form {
	return x.linearize(
		interval.Interval.Sin,
		interval.Interval.Cos,
		func(t interval.Interval) interval.Interval { return t.Sin().Neg() },
	)
}

// Cos returns cos x.
func (x Form) Cos() Form {
	return x.linearize(
		interval.Interval.Cos,
		func(t interval.Interval) interval.Interval { return t.Sin().Neg() },
		func(t interval.Interval) interval.Interval { return t.Cos().Neg() },
	)
}

// Atan returns arctan x.
func (x Form) Atan() Form {
	return x.linearize(
		interval.Interval.Atan,
		func(t interval.Interval) interval.Interval { return t.Sqr().AddConst(1).Inv() },
		func(t interval.Interval) interval.Interval {
			return t.MulConst(-2).Div(t.Sqr().AddConst(1).Sqr())
		},
	)
}

// Abs returns |x|. Ranges straddling zero lose their noise terms.
func (x Form) Abs() Form {
	if !x.Valid() {
		return Form{bad: true}
	}
	rng := x.Range()
	switch {
	case rng.Lo >= 0:
		return x
	case rng.Hi <= 0:
		return x.Neg()
	}
	r := FromInterval(rng.Abs())
	r.ctx = x.ctx
	return r
}
