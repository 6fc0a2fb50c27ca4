package vsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
)

//////
// Linear bounds and preconditioning.
//////

// affineSlopes builds the matrix L of the linear part of F over b from the
// affine forms of its components. Coordinate j is lifted with noise symbol
// εⱼ of radius rⱼ, so the slope of Fᵢ along xⱼ is aᵢⱼ/rⱼ. Point coordinates
// carry no symbol; their column is taken from the midpoint of the interval
// Jacobian.
func affineSlopes(forms []affine.Form, b Box, jac [][]interval.Interval) *mat.Dense {
	n := len(b)
	l := mat.NewDense(len(forms), n, nil)
	for i, f := range forms {
		for j := 0; j < n; j++ {
			r := b[j].Rad()
			if r > 0 {
				l.Set(i, j, f.Coef(j)/r)
				continue
			}
			l.Set(i, j, jac[i][j].Mid())
		}
	}
	return l
}

// midpoint returns the matrix of midpoints of m.
func midpoint(m [][]interval.Interval) *mat.Dense {
	rows, cols := len(m), 0
	if rows > 0 {
		cols = len(m[0])
	}
	d := mat.NewDense(rows, cols, nil)
	for i := range m {
		for j := range m[i] {
			d.Set(i, j, m[i][j].Mid())
		}
	}
	return d
}

// invert returns an approximate inverse of l. It fails with ErrSingular when
// l has non-finite entries, is singular, or its condition number exceeds
// maxCond. The inverse is only used as a preconditioner, so its own rounding
// errors do not affect the rigor of the tests built on it.
func invert(l *mat.Dense, maxCond float64) (*mat.Dense, error) {
	r, c := l.Dims()
	if r != c {
		return nil, fmt.Errorf("invert %dx%d: %w", r, c, ErrDimension)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := l.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("invert: non-finite entry: %w", ErrSingular)
			}
		}
	}
	if cond := mat.Cond(l, 1); math.IsNaN(cond) || cond > maxCond {
		return nil, fmt.Errorf("invert: condition %g: %w", cond, ErrSingular)
	}
	var inv mat.Dense
	if err := inv.Inverse(l); err != nil {
		return nil, fmt.Errorf("invert: %v: %w", err, ErrSingular)
	}
	return &inv, nil
}

// preconditioner returns R ≈ L⁻¹ for the slope matrix L of the forms over
// b. When L cannot be inverted, e.g. because every coefficient of a row was
// absorbed into its error term, the midpoint of the interval Jacobian is
// inverted instead.
func preconditioner(forms []affine.Form, b Box, jac [][]interval.Interval, maxCond float64) (*mat.Dense, error) {
	r, err := invert(affineSlopes(forms, b, jac), maxCond)
	if err == nil {
		return r, nil
	}
	return invert(midpoint(jac), maxCond)
}

// precondition returns R·v evaluated with outward rounding.
func precondition(r *mat.Dense, v []interval.Interval) []interval.Interval {
	rows, cols := r.Dims()
	out := make([]interval.Interval, rows)
	for i := 0; i < rows; i++ {
		s := interval.Point(0)
		for k := 0; k < cols; k++ {
			s = s.Add(v[k].MulConst(r.At(i, k)))
		}
		out[i] = s
	}
	return out
}

// preconditionMatrix returns R·M evaluated with outward rounding.
func preconditionMatrix(r *mat.Dense, m [][]interval.Interval) [][]interval.Interval {
	rows, inner := r.Dims()
	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}
	out := make([][]interval.Interval, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]interval.Interval, cols)
		for j := 0; j < cols; j++ {
			s := interval.Point(0)
			for k := 0; k < inner; k++ {
				s = s.Add(m[k][j].MulConst(r.At(i, k)))
			}
			out[i][j] = s
		}
	}
	return out
}

// rowWeights returns row i of r as a slice.
func rowWeights(r *mat.Dense, i int) []float64 {
	return mat.Row(nil, i, r)
}
