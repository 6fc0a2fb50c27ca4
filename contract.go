package vsolve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/thalesfsp/vsolve/interval"
)

//////
// Krawczyk contraction.
//////

type status int

const (
	statusUnknown status = iota
	statusEmpty
	statusUnique
)

// contraction is the outcome of the Krawczyk operator on a box.
type contraction struct {
	status status

	// image is K(X). Every root in X lies in image ∩ X.
	image Box

	// norm bounds ‖Id - R·J(X)‖∞ from above.
	norm float64
}

// krawczyk evaluates
//
//	K(X) = C - R·F(C) + (Id - R·J(X))·(X - C)
//
// where fc encloses F at the point c, jac encloses the Jacobian of F over x
// and r approximates the inverse of the Jacobian.
func krawczyk(x Box, c []float64, fc []interval.Interval, jac [][]interval.Interval, r *mat.Dense) contraction {
	n := len(x)
	rfc := precondition(r, fc)
	rj := preconditionMatrix(r, jac)

	k := make(Box, n)
	norm := 0.0
	for i := 0; i < n; i++ {
		sum := interval.Point(c[i]).Sub(rfc[i])
		row := 0.0
		for j := 0; j < n; j++ {
			e := rj[i][j].Neg()
			if i == j {
				e = e.AddConst(1)
			}
			row = interval.AddUp(row, e.Mag())
			sum = sum.Add(e.Mul(x[j].Sub(interval.Point(c[j]))))
		}
		norm = math.Max(norm, row)
		k[i] = sum
	}
	return classify(x, k, norm)
}

// classify applies the Krawczyk existence test: no root when K(X) misses X,
// a unique root when K(X) lies in the interior of X or when K(X) ⊆ X and the
// operator is a contraction.
func classify(x, k Box, norm float64) contraction {
	res := contraction{image: k, norm: norm}
	if !k.Valid() {
		return res
	}
	switch {
	case !k.Overlaps(x):
		res.status = statusEmpty
	case k.Interior(x), k.Subset(x) && norm < 1:
		res.status = statusUnique
	}
	return res
}

// inflate widens every coordinate of b by a tenth of its width plus a few
// ulps, so point boxes grow too.
func inflate(b Box) Box {
	out := make(Box, len(b))
	for j, x := range b {
		eps := interval.AddUp(x.Width()*0.1, 4*interval.Ulp(x.Mag())+math.SmallestNonzeroFloat64)
		out[j] = x.Add(interval.New(-eps, eps))
	}
	return out
}
