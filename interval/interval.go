package interval

import (
	"fmt"
	"math"
)

// Interval is the closed range [Lo, Hi]. A zero-width interval represents a
// single float64. NaN bounds mark the invalid interval produced by a domain
// error.
type Interval struct {
	Lo float64
	Hi float64
}

// New returns [lo, hi]. The caller is responsible for lo <= hi; use
// Valid to check untrusted input.
func New(lo, hi float64) Interval { return Interval{Lo: lo, Hi: hi} }

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval { return Interval{Lo: v, Hi: v} }

// Entire returns (-Inf, +Inf).
func Entire() Interval { return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)} }

// Invalid returns the interval signalling a domain error.
func Invalid() Interval { return Interval{Lo: math.NaN(), Hi: math.NaN()} }

// Valid reports whether x is a well-formed interval.
func (x Interval) Valid() bool {
	return !math.IsNaN(x.Lo) && !math.IsNaN(x.Hi) && x.Lo <= x.Hi
}

// IsPoint reports whether x has zero width.
func (x Interval) IsPoint() bool { return x.Lo == x.Hi }

// Width returns an upper bound of Hi-Lo.
func (x Interval) Width() float64 { return subUp(x.Hi, x.Lo) }

// Mid returns a float64 inside x close to its center.
func (x Interval) Mid() float64 {
	switch {
	case x.Lo == x.Hi:
		return x.Lo
	case math.IsInf(x.Lo, -1) && math.IsInf(x.Hi, 1):
		return 0
	case math.IsInf(x.Lo, -1):
		return -math.MaxFloat64
	case math.IsInf(x.Hi, 1):
		return math.MaxFloat64
	}
	m := 0.5*x.Lo + 0.5*x.Hi
	// Guard against results escaping x through underflow of the halves.
	if m < x.Lo {
		return x.Lo
	}
	if m > x.Hi {
		return x.Hi
	}
	return m
}

// Rad returns an upper bound of the distance from Mid to either endpoint.
func (x Interval) Rad() float64 {
	m := x.Mid()
	return math.Max(subUp(m, x.Lo), subUp(x.Hi, m))
}

// Mag returns max(|Lo|, |Hi|).
func (x Interval) Mag() float64 { return math.Max(math.Abs(x.Lo), math.Abs(x.Hi)) }

// Contains reports whether v lies in x.
func (x Interval) Contains(v float64) bool { return x.Lo <= v && v <= x.Hi }

// ContainsZero reports whether 0 lies in x.
func (x Interval) ContainsZero() bool { return x.Lo <= 0 && 0 <= x.Hi }

// Subset reports whether x is contained in y.
func (x Interval) Subset(y Interval) bool { return y.Lo <= x.Lo && x.Hi <= y.Hi }

// Interior reports whether x lies strictly inside y.
func (x Interval) Interior(y Interval) bool { return y.Lo < x.Lo && x.Hi < y.Hi }

// Overlaps reports whether x and y share at least one point.
func (x Interval) Overlaps(y Interval) bool { return x.Lo <= y.Hi && y.Lo <= x.Hi }

// Intersect returns x ∩ y and false when it is empty.
func (x Interval) Intersect(y Interval) (Interval, bool) {
	lo, hi := math.Max(x.Lo, y.Lo), math.Min(x.Hi, y.Hi)
	if lo > hi || math.IsNaN(lo) || math.IsNaN(hi) {
		return Interval{}, false
	}
	return Interval{Lo: lo, Hi: hi}, true
}

// Hull returns the smallest interval containing x and y.
func (x Interval) Hull(y Interval) Interval {
	return Interval{Lo: math.Min(x.Lo, y.Lo), Hi: math.Max(x.Hi, y.Hi)}
}

// Equal reports bound-wise equality.
func (x Interval) Equal(y Interval) bool { return x.Lo == y.Lo && x.Hi == y.Hi }

func (x Interval) String() string {
	if !x.Valid() {
		return "[invalid]"
	}
	return fmt.Sprintf("[%.17g, %.17g]", x.Lo, x.Hi)
}
