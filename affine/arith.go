package affine

import (
	"math"

	"github.com/thalesfsp/vsolve/interval"
)

// affineMap returns alpha·x + beta·y + shift.
func affineMap(x, y Form, alpha, beta float64, shift interval.Interval) Form {
	if x.bad || y.bad {
		return Form{bad: true}
	}
	ctx := join(x, y)
	acc := newAccumulator(ctx)
	pa, pb := interval.Point(alpha), interval.Point(beta)
	acc.center(pa.Mul(interval.Point(x.c)).Add(pb.Mul(interval.Point(y.c))).Add(shift))
	if ctx != nil {
		for j := 0; j < ctx.dim; j++ {
			acc.coef(j, pa.Mul(interval.Point(x.Coef(j))).Add(pb.Mul(interval.Point(y.Coef(j)))))
		}
	}
	acc.err(interval.AddUp(interval.MulUp(math.Abs(alpha), x.e), interval.MulUp(math.Abs(beta), y.e)))
	return acc.form
}

// Add returns x + y.
func (x Form) Add(y Form) Form { return affineMap(x, y, 1, 1, interval.Point(0)) }

// Sub returns x - y.
func (x Form) Sub(y Form) Form { return affineMap(x, y, 1, -1, interval.Point(0)) }

// Neg returns -x. Negation is exact.
func (x Form) Neg() Form {
	if x.bad {
		return x
	}
	r := Form{ctx: x.ctx, c: -x.c, e: x.e}
	if x.a != nil {
		r.a = make([]float64, len(x.a))
		for j, v := range x.a {
			r.a[j] = -v
		}
	}
	return r
}

// AddConst returns x + c.
func (x Form) AddConst(c float64) Form { return affineMap(x, Form{}, 1, 0, interval.Point(c)) }

// MulConst returns c·x.
func (x Form) MulConst(c float64) Form { return affineMap(x, Form{}, c, 0, interval.Point(0)) }

// addInterval returns x + v, v entering as center and error only.
func (x Form) addInterval(v interval.Interval) Form {
	return affineMap(x, Form{}, 1, 0, v)
}

// Mul returns x·y. The quadratic part of the product is bounded by the
// product of the radii and moved into the error term.
func (x Form) Mul(y Form) Form {
	if x.bad || y.bad {
		return Form{bad: true}
	}
	ctx := join(x, y)
	acc := newAccumulator(ctx)
	cx, cy := interval.Point(x.c), interval.Point(y.c)
	acc.center(cx.Mul(cy))
	if ctx != nil {
		for j := 0; j < ctx.dim; j++ {
			acc.coef(j, cx.Mul(interval.Point(y.Coef(j))).Add(cy.Mul(interval.Point(x.Coef(j)))))
		}
	}
	acc.err(interval.MulUp(math.Abs(x.c), y.e))
	acc.err(interval.MulUp(math.Abs(y.c), x.e))
	acc.err(interval.MulUp(x.Radius(), y.Radius()))
	return acc.form
}

// Div returns x / y.
func (x Form) Div(y Form) Form { return x.Mul(y.Inv()) }
