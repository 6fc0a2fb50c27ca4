package vsolve

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
)

//////
// Non-existence tests. Each returns true only when the box provably holds
// no root; false means "don't know".
//////

func excludesZero(values []interval.Interval) bool {
	for _, v := range values {
		if !v.ContainsZero() {
			return true
		}
	}
	return false
}

func formsExcludeZero(forms []affine.Form) bool {
	for _, f := range forms {
		if !f.Range().ContainsZero() {
			return true
		}
	}
	return false
}

// preconditionedExcludesZero combines the forms with the rows of R. Any
// combination of the components vanishes at a root, so a combination whose
// range excludes zero proves there is none.
func preconditionedExcludesZero(r *mat.Dense, forms []affine.Form) bool {
	rows, _ := r.Dims()
	for i := 0; i < rows; i++ {
		g := affine.LinearCombination(rowWeights(r, i), forms)
		if g.Valid() && !g.Range().ContainsZero() {
			return true
		}
	}
	return false
}

// lpTolerance is the relative margin the optimal slack must exceed before
// the linear program is trusted to prove non-existence.
const lpTolerance = 1e-9

// linearProgramExcludesZero decides whether the forms Fᵢ = dᵢ + Σ aᵢₖ·uₖ ± eᵢ,
// with uₖ = εₖ + 1 ∈ [0, 2], can vanish simultaneously. It minimizes the
// slack s needed to satisfy
//
//	-eᵢ - s ≤ dᵢ + Σₖ aᵢₖ·uₖ ≤ eᵢ + s
//
// for all i. A strictly positive optimum proves there is no common zero.
// The variables are u (n), w (n, with u + w = 2), s, and the slacks p, q of
// the two inequalities per form.
func linearProgramExcludesZero(forms []affine.Form, n int) bool {
	m := len(forms)
	if m == 0 || n == 0 {
		return false
	}
	vars := 2*n + 1 + 2*m
	cons := n + 2*m
	sIdx := 2 * n

	a := mat.NewDense(cons, vars, nil)
	b := make([]float64, cons)
	c := make([]float64, vars)
	c[sIdx] = 1

	scale := 0.0
	for k := 0; k < n; k++ {
		a.Set(k, k, 1)
		a.Set(k, n+k, 1)
		b[k] = 2
	}
	for i, f := range forms {
		if !f.Valid() {
			return false
		}
		d := f.Center()
		for k := 0; k < n; k++ {
			d -= f.Coef(k)
		}
		e := f.Err()
		upper, lower := n+i, n+m+i
		for k := 0; k < n; k++ {
			a.Set(upper, k, f.Coef(k))
			a.Set(lower, k, -f.Coef(k))
		}
		a.Set(upper, sIdx, -1)
		a.Set(lower, sIdx, -1)
		a.Set(upper, sIdx+1+i, 1)
		a.Set(lower, sIdx+1+m+i, 1)
		b[upper] = e - d
		b[lower] = e + d
		scale = math.Max(scale, math.Abs(d)+e)
	}

	// Standard form wants b ≥ 0.
	for i := range b {
		if b[i] < 0 {
			b[i] = -b[i]
			for j := 0; j < vars; j++ {
				a.Set(i, j, -a.At(i, j))
			}
		}
	}

	opt, _, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return false
	}
	return opt > lpTolerance*(1+scale)
}
