package interval

import "math"

//////
// Arithmetic.
//////

// Add returns x + y.
func (x Interval) Add(y Interval) Interval {
	if !x.Valid() || !y.Valid() {
		return Invalid()
	}
	return Interval{Lo: addDown(x.Lo, y.Lo), Hi: addUp(x.Hi, y.Hi)}
}

// Sub returns x - y.
func (x Interval) Sub(y Interval) Interval {
	if !x.Valid() || !y.Valid() {
		return Invalid()
	}
	return Interval{Lo: subDown(x.Lo, y.Hi), Hi: subUp(x.Hi, y.Lo)}
}

// Neg returns -x.
func (x Interval) Neg() Interval {
	if !x.Valid() {
		return Invalid()
	}
	return Interval{Lo: -x.Hi, Hi: -x.Lo}
}

// Mul returns x * y.
func (x Interval) Mul(y Interval) Interval {
	if !x.Valid() || !y.Valid() {
		return Invalid()
	}
	lo := math.Min(
		math.Min(mulDown(x.Lo, y.Lo), mulDown(x.Lo, y.Hi)),
		math.Min(mulDown(x.Hi, y.Lo), mulDown(x.Hi, y.Hi)),
	)
	hi := math.Max(
		math.Max(mulUp(x.Lo, y.Lo), mulUp(x.Lo, y.Hi)),
		math.Max(mulUp(x.Hi, y.Lo), mulUp(x.Hi, y.Hi)),
	)
	return Interval{Lo: lo, Hi: hi}
}

// Div returns x / y. The result is invalid when y contains zero; use
// DivExtended for the two-piece quotient.
func (x Interval) Div(y Interval) Interval {
	if !x.Valid() || !y.Valid() || y.ContainsZero() {
		return Invalid()
	}
	lo := math.Min(
		math.Min(divDown(x.Lo, y.Lo), divDown(x.Lo, y.Hi)),
		math.Min(divDown(x.Hi, y.Lo), divDown(x.Hi, y.Hi)),
	)
	hi := math.Max(
		math.Max(divUp(x.Lo, y.Lo), divUp(x.Lo, y.Hi)),
		math.Max(divUp(x.Hi, y.Lo), divUp(x.Hi, y.Hi)),
	)
	return Interval{Lo: lo, Hi: hi}
}

// Inv returns 1 / x.
func (x Interval) Inv() Interval { return Point(1).Div(x) }

// AddConst returns x + c.
func (x Interval) AddConst(c float64) Interval { return x.Add(Point(c)) }

// MulConst returns x * c.
func (x Interval) MulConst(c float64) Interval { return x.Mul(Point(c)) }

// Const returns the degenerate interval [c, c].
func (Interval) Const(c float64) Interval { return Point(c) }

// Sqr returns x², which unlike x.Mul(x) never dips below zero.
func (x Interval) Sqr() Interval {
	if !x.Valid() {
		return Invalid()
	}
	switch {
	case x.Lo >= 0:
		return Interval{Lo: mulDown(x.Lo, x.Lo), Hi: mulUp(x.Hi, x.Hi)}
	case x.Hi <= 0:
		return Interval{Lo: mulDown(x.Hi, x.Hi), Hi: mulUp(x.Lo, x.Lo)}
	}
	return Interval{Lo: 0, Hi: math.Max(mulUp(x.Lo, x.Lo), mulUp(x.Hi, x.Hi))}
}

// Pow returns xⁿ for an integer exponent. Negative exponents go through
// Inv and fail on ranges containing zero.
func (x Interval) Pow(n int) Interval {
	if !x.Valid() {
		return Invalid()
	}
	switch {
	case n == 0:
		return Point(1)
	case n == 1:
		return x
	case n == 2:
		return x.Sqr()
	case n < 0:
		return x.Pow(-n).Inv()
	}
	lo, hi := pointPow(x.Lo, n), pointPow(x.Hi, n)
	if n%2 == 1 {
		return Interval{Lo: lo.Lo, Hi: hi.Hi}
	}
	switch {
	case x.Lo >= 0:
		return Interval{Lo: lo.Lo, Hi: hi.Hi}
	case x.Hi <= 0:
		return Interval{Lo: hi.Lo, Hi: lo.Hi}
	}
	return Interval{Lo: 0, Hi: math.Max(lo.Hi, hi.Hi)}
}

// pointPow encloses vⁿ by binary exponentiation over degenerate intervals.
func pointPow(v float64, n int) Interval {
	result := Point(1)
	base := Point(v)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Sqr()
		n >>= 1
	}
	return result
}

// Abs returns |x|.
func (x Interval) Abs() Interval {
	if !x.Valid() {
		return Invalid()
	}
	switch {
	case x.Lo >= 0:
		return x
	case x.Hi <= 0:
		return x.Neg()
	}
	return Interval{Lo: 0, Hi: math.Max(-x.Lo, x.Hi)}
}

// DivExtended encloses {n/d : n ∈ num, d ∈ den, d ≠ 0} as at most two
// intervals, following the usual convention for divisors containing zero.
// It returns the number of pieces written: 0 when the quotient set is
// empty, 1 or 2 otherwise. A single piece may be unbounded.
func DivExtended(num, den Interval) (Interval, Interval, int) {
	if !num.Valid() || !den.Valid() {
		return Entire(), Interval{}, 1
	}
	if !den.ContainsZero() {
		return num.Div(den), Interval{}, 1
	}
	if num.ContainsZero() {
		return Entire(), Interval{}, 1
	}
	if den.Lo == 0 && den.Hi == 0 {
		return Interval{}, Interval{}, 0
	}

	inf := math.Inf(1)
	if num.Lo > 0 {
		switch {
		case den.Lo == 0:
			return Interval{Lo: divDown(num.Lo, den.Hi), Hi: inf}, Interval{}, 1
		case den.Hi == 0:
			return Interval{Lo: -inf, Hi: divUp(num.Lo, den.Lo)}, Interval{}, 1
		}
		return Interval{Lo: -inf, Hi: divUp(num.Lo, den.Lo)},
			Interval{Lo: divDown(num.Lo, den.Hi), Hi: inf}, 2
	}

	// num.Hi < 0
	switch {
	case den.Lo == 0:
		return Interval{Lo: -inf, Hi: divUp(num.Hi, den.Hi)}, Interval{}, 1
	case den.Hi == 0:
		return Interval{Lo: divDown(num.Hi, den.Lo), Hi: inf}, Interval{}, 1
	}
	return Interval{Lo: -inf, Hi: divUp(num.Hi, den.Hi)},
		Interval{Lo: divDown(num.Hi, den.Lo), Hi: inf}, 2
}
