package interval

import "math"

//////
// Elementary functions.
//////

const halfPi = math.Pi / 2

// Sqrt returns √x. The result is invalid unless x ≥ 0.
func (x Interval) Sqrt() Interval {
	if !x.Valid() || x.Lo < 0 {
		return Invalid()
	}
	return Interval{Lo: sqrtDown(x.Lo), Hi: sqrtUp(x.Hi)}
}

// Exp returns eˣ.
func (x Interval) Exp() Interval {
	if !x.Valid() {
		return Invalid()
	}
	return Interval{Lo: math.Max(0, down2(math.Exp(x.Lo))), Hi: up2(math.Exp(x.Hi))}
}

// Log returns ln x. The result is invalid unless x > 0.
func (x Interval) Log() Interval {
	if !x.Valid() || x.Lo <= 0 {
		return Invalid()
	}
	return Interval{Lo: down2(math.Log(x.Lo)), Hi: up2(math.Log(x.Hi))}
}

// Atan returns arctan x.
func (x Interval) Atan() Interval {
	if !x.Valid() {
		return Invalid()
	}
	limit := up2(halfPi)
	return Interval{
		Lo: math.Max(-limit, down2(math.Atan(x.Lo))),
		Hi: math.Min(limit, up2(math.Atan(x.Hi))),
	}
}

// Sin returns sin x.
func (x Interval) Sin() Interval {
	if !x.Valid() {
		return Invalid()
	}
	if x.wide() {
		return Interval{Lo: -1, Hi: 1}
	}
	a, b := math.Sin(x.Lo), math.Sin(x.Hi)
	r := Interval{Lo: down2(math.Min(a, b)), Hi: up2(math.Max(a, b))}
	if x.mayContain(halfPi) {
		r.Hi = 1
	}
	if x.mayContain(-halfPi) {
		r.Lo = -1
	}
	return r.clampUnit()
}

// Cos returns cos x.
func (x Interval) Cos() Interval {
	if !x.Valid() {
		return Invalid()
	}
	if x.wide() {
		return Interval{Lo: -1, Hi: 1}
	}
	a, b := math.Cos(x.Lo), math.Cos(x.Hi)
	r := Interval{Lo: down2(math.Min(a, b)), Hi: up2(math.Max(a, b))}
	if x.mayContain(0) {
		r.Hi = 1
	}
	if x.mayContain(math.Pi) {
		r.Lo = -1
	}
	return r.clampUnit()
}

func (x Interval) wide() bool {
	return math.IsInf(x.Lo, 0) || math.IsInf(x.Hi, 0) || x.Hi-x.Lo >= 2*math.Pi
}

// mayContain reports whether x possibly contains offset + 2kπ for some
// integer k. False positives only widen the result.
func (x Interval) mayContain(offset float64) bool {
	t := (x.Lo - offset) / (2 * math.Pi)
	k := math.Ceil(t - 1e-9*(1+math.Abs(t)))
	p := offset + 2*math.Pi*k
	return p <= x.Hi+1e-12*(1+math.Abs(x.Hi))
}

func (x Interval) clampUnit() Interval {
	return Interval{Lo: math.Max(-1, x.Lo), Hi: math.Min(1, x.Hi)}
}
