package interval

import "math"

// minNormal is the smallest positive normal float64. Below it FMA residuals
// may underflow and stop being exact.
const minNormal = 2.2250738585072014e-308

func down(x float64) float64 { return math.Nextafter(x, math.Inf(-1)) }

func up(x float64) float64 { return math.Nextafter(x, math.Inf(1)) }

// down2 and up2 widen results of math package functions, which are accurate
// to about one ulp but not correctly rounded.
func down2(x float64) float64 { return down(down(x)) }

func up2(x float64) float64 { return up(up(x)) }

// twoSumErr returns the exact rounding error of s = fl(a+b), so that
// a + b = s + e holds exactly for finite operands.
func twoSumErr(a, b, s float64) float64 {
	bb := s - a
	return (a - (s - bb)) + (b - bb)
}

func addDown(a, b float64) float64 {
	s := a + b
	if math.IsNaN(s) {
		return s
	}
	if math.IsInf(s, 1) {
		if math.IsInf(a, 1) || math.IsInf(b, 1) {
			return s
		}
		return math.MaxFloat64
	}
	if math.IsInf(s, -1) {
		return s
	}
	if twoSumErr(a, b, s) < 0 {
		return down(s)
	}
	return s
}

func addUp(a, b float64) float64 {
	s := a + b
	if math.IsNaN(s) {
		return s
	}
	if math.IsInf(s, -1) {
		if math.IsInf(a, -1) || math.IsInf(b, -1) {
			return s
		}
		return -math.MaxFloat64
	}
	if math.IsInf(s, 1) {
		return s
	}
	if twoSumErr(a, b, s) > 0 {
		return up(s)
	}
	return s
}

func subDown(a, b float64) float64 { return addDown(a, -b) }

func subUp(a, b float64) float64 { return addUp(a, -b) }

// mulResidual returns p = fl(a*b) and the sign of a*b - p, with inexact set
// when the sign could not be determined reliably.
func mulResidual(a, b float64) (p float64, sign int, inexact bool) {
	if a == 0 || b == 0 {
		return 0, 0, false
	}
	p = a * b
	if math.IsInf(p, 0) {
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return p, 0, false
		}
		return p, 0, true
	}
	if math.Abs(p) < minNormal {
		return p, 0, true
	}
	e := math.FMA(a, b, -p)
	switch {
	case e > 0:
		return p, 1, false
	case e < 0:
		return p, -1, false
	}
	return p, 0, false
}

func mulDown(a, b float64) float64 {
	p, sign, inexact := mulResidual(a, b)
	if math.IsInf(p, 1) && inexact {
		return math.MaxFloat64
	}
	if inexact || sign < 0 {
		return down(p)
	}
	return p
}

func mulUp(a, b float64) float64 {
	p, sign, inexact := mulResidual(a, b)
	if math.IsInf(p, -1) && inexact {
		return -math.MaxFloat64
	}
	if inexact || sign > 0 {
		return up(p)
	}
	return p
}

// divResidual mirrors mulResidual for q = fl(a/b), b != 0.
func divResidual(a, b float64) (q float64, sign int, inexact bool) {
	if a == 0 {
		return 0, 0, false
	}
	q = a / b
	if math.IsInf(q, 0) {
		if math.IsInf(a, 0) {
			return q, 0, false
		}
		return q, 0, true
	}
	if math.IsInf(b, 0) {
		return q, 0, true
	}
	if math.Abs(q) < minNormal {
		return q, 0, true
	}
	r := math.FMA(-q, b, a)
	switch {
	case r == 0:
		return q, 0, false
	case (r > 0) == (b > 0):
		return q, 1, false
	}
	return q, -1, false
}

func divDown(a, b float64) float64 {
	q, sign, inexact := divResidual(a, b)
	if math.IsInf(q, 1) && inexact {
		return math.MaxFloat64
	}
	if inexact || sign < 0 {
		return down(q)
	}
	return q
}

func divUp(a, b float64) float64 {
	q, sign, inexact := divResidual(a, b)
	if math.IsInf(q, -1) && inexact {
		return -math.MaxFloat64
	}
	if inexact || sign > 0 {
		return up(q)
	}
	return q
}

func sqrtDown(a float64) float64 {
	s := math.Sqrt(a)
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return s
	}
	if math.FMA(-s, s, a) < 0 {
		return down(s)
	}
	return s
}

func sqrtUp(a float64) float64 {
	s := math.Sqrt(a)
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return s
	}
	if s == 0 {
		if a == 0 {
			return 0
		}
		return up(s)
	}
	if math.FMA(-s, s, a) > 0 {
		return up(s)
	}
	return s
}

// AddUp returns an upper bound of a+b. Used by packages that accumulate
// rounding error radii.
func AddUp(a, b float64) float64 { return addUp(a, b) }

// MulUp returns an upper bound of a*b.
func MulUp(a, b float64) float64 { return mulUp(a, b) }

// Ulp returns the distance from |x| to the next float64 away from zero.
func Ulp(x float64) float64 {
	ax := math.Abs(x)
	if math.IsInf(ax, 0) || math.IsNaN(ax) {
		return ax
	}
	return math.Nextafter(ax, math.Inf(1)) - ax
}
