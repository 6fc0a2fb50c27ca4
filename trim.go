package vsolve

import (
	"github.com/thalesfsp/vsolve/interval"
)

// trim narrows x with one sweep of the interval Gauss-Seidel method on the
// mean-value form
//
//	0 ∈ b + M·(x - c),   b = R·F(c),  M = R·J(X)
//
// solving row j for coordinate j. It returns no box when some coordinate
// becomes empty, which proves x holds no root. When a division by a
// coefficient straddling zero cuts a gap out of a coordinate, split selects
// whether the sweep stops and returns both pieces or continues with their
// hull.
func trim(x Box, c []float64, b []interval.Interval, m [][]interval.Interval, split bool) []Box {
	y := x.Clone()
	for j := range y {
		num := b[j]
		for k := range y {
			if k != j {
				num = num.Add(m[j][k].Mul(y[k].Sub(interval.Point(c[k]))))
			}
		}

		// m[j][j]·(x_j - c_j) = -num
		q1, q2, pieces := interval.DivExtended(num, m[j][j])
		if pieces == 0 {
			return nil
		}
		p1, ok1 := interval.Point(c[j]).Sub(q1).Intersect(y[j])
		if pieces == 1 {
			if !ok1 {
				return nil
			}
			y[j] = p1
			continue
		}

		p2, ok2 := interval.Point(c[j]).Sub(q2).Intersect(y[j])
		switch {
		case !ok1 && !ok2:
			return nil
		case !ok2:
			y[j] = p1
		case !ok1:
			y[j] = p2
		case split:
			other := y.Clone()
			y[j], other[j] = p1, p2
			return []Box{y, other}
		default:
			y[j] = p1.Hull(p2)
		}
	}
	return []Box{y}
}
