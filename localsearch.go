package vsolve

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// localSearch minimizes the floating-point objective from the center of box
// with Nelder-Mead, keeping every evaluated point inside box. The returned
// point is only a candidate: its value must still be evaluated rigorously.
func localSearch(sys System, box Box, evaluations int) ([]float64, bool) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			p := clamp(box, append([]float64(nil), x...))
			v, err := sys.evalReal(p, 1)
			if err != nil {
				return math.Inf(1)
			}
			return v[0]
		},
	}
	settings := &optimize.Settings{FuncEvaluations: evaluations}

	result, err := optimize.Minimize(problem, box.Mid(), settings, &optimize.NelderMead{})
	if result == nil || result.X == nil {
		return nil, false
	}
	if err != nil && math.IsInf(result.F, 1) {
		return nil, false
	}
	return clamp(box, append([]float64(nil), result.X...)), true
}
