package interval

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidBox is returned by NewBox for mismatched or inverted bounds.
var ErrInvalidBox = errors.New("interval: invalid box")

// Box is an axis-aligned n-dimensional box.
type Box []Interval

// NewBox builds a box from matching lower and upper bound slices.
func NewBox(lo, hi []float64) (Box, error) {
	if len(lo) != len(hi) || len(lo) == 0 {
		return nil, fmt.Errorf("NewBox: %d lower vs %d upper bounds: %w", len(lo), len(hi), ErrInvalidBox)
	}
	b := make(Box, len(lo))
	for i := range lo {
		b[i] = Interval{Lo: lo[i], Hi: hi[i]}
		if !b[i].Valid() || math.IsInf(lo[i], 0) || math.IsInf(hi[i], 0) {
			return nil, fmt.Errorf("NewBox: coordinate %d %v: %w", i, b[i], ErrInvalidBox)
		}
	}
	return b, nil
}

// PointBox returns the degenerate box {p}.
func PointBox(p []float64) Box {
	b := make(Box, len(p))
	for i, v := range p {
		b[i] = Point(v)
	}
	return b
}

// Clone returns a copy that shares no storage with b.
func (b Box) Clone() Box {
	c := make(Box, len(b))
	copy(c, b)
	return c
}

// Valid reports whether every coordinate is a valid interval.
func (b Box) Valid() bool {
	if len(b) == 0 {
		return false
	}
	for _, x := range b {
		if !x.Valid() {
			return false
		}
	}
	return true
}

// Mid returns the coordinate-wise midpoint.
func (b Box) Mid() []float64 {
	m := make([]float64, len(b))
	for i, x := range b {
		m[i] = x.Mid()
	}
	return m
}

// Widths returns the coordinate widths.
func (b Box) Widths() []float64 {
	w := make([]float64, len(b))
	for i, x := range b {
		w[i] = x.Width()
	}
	return w
}

// Widest returns the index of the widest coordinate, the lowest index on
// ties.
func (b Box) Widest() int {
	best, width := 0, -1.0
	for i, x := range b {
		if w := x.Width(); w > width {
			best, width = i, w
		}
	}
	return best
}

// MaxWidth returns the width of the widest coordinate.
func (b Box) MaxWidth() float64 {
	if len(b) == 0 {
		return 0
	}
	return b[b.Widest()].Width()
}

// Contains reports whether the point p lies in b.
func (b Box) Contains(p []float64) bool {
	if len(p) != len(b) {
		return false
	}
	for i, x := range b {
		if !x.Contains(p[i]) {
			return false
		}
	}
	return true
}

// Subset reports whether b ⊆ o.
func (b Box) Subset(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Subset(o[i]) {
			return false
		}
	}
	return true
}

// Interior reports whether b lies in the interior of o.
func (b Box) Interior(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Interior(o[i]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and o share at least one point.
func (b Box) Overlaps(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Overlaps(o[i]) {
			return false
		}
	}
	return true
}

// Intersect returns b ∩ o and false when it is empty.
func (b Box) Intersect(o Box) (Box, bool) {
	if len(b) != len(o) {
		return nil, false
	}
	r := make(Box, len(b))
	for i := range b {
		x, ok := b[i].Intersect(o[i])
		if !ok {
			return nil, false
		}
		r[i] = x
	}
	return r, true
}

// Hull returns the smallest box containing b and o.
func (b Box) Hull(o Box) Box {
	r := make(Box, len(b))
	for i := range b {
		r[i] = b[i].Hull(o[i])
	}
	return r
}

// Split returns the two halves of b cut at m along coordinate j. Both halves
// keep m as a shared face.
func (b Box) Split(j int, m float64) (Box, Box) {
	left, right := b.Clone(), b.Clone()
	left[j].Hi = m
	right[j].Lo = m
	return left, right
}

// Equal reports bound-wise equality.
func (b Box) Equal(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (b Box) String() string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
