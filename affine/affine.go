// Package affine implements affine arithmetic with a rigorous error term.
//
// A Form represents the set
//
//	{ c + Σⱼ aⱼ·εⱼ + δ : εⱼ ∈ [-1, 1], |δ| ≤ e }
//
// where each noise symbol εⱼ is shared by every form derived from the same
// lifted box, so correlations between intermediate results survive and the
// final enclosure is tighter than plain interval evaluation.
//
// Noise symbols belong to a Context. Lift creates a fresh context for every
// top-level evaluation, with coordinate j owning symbol j; there is no
// process-wide counter to reset, and forms from different lifts can not be
// mixed (doing so panics). Constants created with Const or the zero Form
// belong to no context and combine with any form.
//
// Rounding errors of the floating-point coefficients and the remainders of
// nonlinear operations are accumulated in e, so the represented set always
// contains the exact result.
package affine

import (
	"math"

	"github.com/thalesfsp/vsolve/interval"
)

// Context owns the noise symbols of one lifted box.
type Context struct {
	dim int
}

// Dim returns the number of noise symbols, one per box coordinate.
func (c *Context) Dim() int { return c.dim }

// Form is an affine value. The zero Form is the constant 0.
type Form struct {
	ctx *Context
	c   float64
	a   []float64
	e   float64
	bad bool
}

// Lift opens a new context for b and returns the form of each coordinate:
// coordinate j becomes mid(b[j]) + rad(b[j])·εⱼ.
func Lift(b interval.Box) []Form {
	ctx := &Context{dim: len(b)}
	forms := make([]Form, len(b))
	for j, x := range b {
		a := make([]float64, len(b))
		a[j] = x.Rad()
		forms[j] = Form{ctx: ctx, c: x.Mid(), a: a}
	}
	return forms
}

// FromInterval returns a form without noise terms enclosing x.
func FromInterval(x interval.Interval) Form {
	if !x.Valid() {
		return Form{bad: true}
	}
	return Form{c: x.Mid(), e: x.Rad()}
}

// Context returns the context of f, nil for constants.
func (f Form) Context() *Context { return f.ctx }

// Center returns the central value c.
func (f Form) Center() float64 { return f.c }

// Coef returns the coefficient of noise symbol j.
func (f Form) Coef(j int) float64 {
	if j < 0 || j >= len(f.a) {
		return 0
	}
	return f.a[j]
}

// Err returns the radius of the accumulated error term.
func (f Form) Err() float64 { return f.e }

// Radius returns Σ|aⱼ| + e, rounded up.
func (f Form) Radius() float64 {
	r := f.e
	for _, v := range f.a {
		r = interval.AddUp(r, math.Abs(v))
	}
	return r
}

// Range returns the interval enclosure of f.
func (f Form) Range() interval.Interval {
	if !f.Valid() {
		return interval.Invalid()
	}
	r := f.Radius()
	return interval.Point(f.c).Add(interval.New(-r, r))
}

// Valid reports whether f is a finite, well-defined form.
func (f Form) Valid() bool {
	return !f.bad && !math.IsNaN(f.c) && !math.IsInf(f.c, 0) &&
		!math.IsNaN(f.e) && !math.IsInf(f.e, 0)
}

// Const returns the constant c in the context of f.
func (f Form) Const(c float64) Form { return Form{ctx: f.ctx, c: c} }

func (f Form) dim() int {
	if f.ctx == nil {
		return 0
	}
	return f.ctx.dim
}

func join(x, y Form) *Context {
	switch {
	case x.ctx == nil:
		return y.ctx
	case y.ctx == nil, x.ctx == y.ctx:
		return x.ctx
	}
	panic("affine: forms from different contexts")
}

// accumulator collects a form coefficient by coefficient, moving the
// rounding error of every interval-evaluated coefficient into e.
type accumulator struct {
	form Form
}

func newAccumulator(ctx *Context) *accumulator {
	acc := &accumulator{form: Form{ctx: ctx}}
	if ctx != nil {
		acc.form.a = make([]float64, ctx.dim)
	}
	return acc
}

func (acc *accumulator) center(v interval.Interval) {
	if !v.Valid() {
		acc.form.bad = true
		return
	}
	acc.form.c = v.Mid()
	acc.form.e = interval.AddUp(acc.form.e, v.Rad())
}

func (acc *accumulator) coef(j int, v interval.Interval) {
	if !v.Valid() {
		acc.form.bad = true
		return
	}
	acc.form.a[j] = v.Mid()
	acc.form.e = interval.AddUp(acc.form.e, v.Rad())
}

func (acc *accumulator) err(r float64) {
	if math.IsNaN(r) {
		acc.form.bad = true
		return
	}
	acc.form.e = interval.AddUp(acc.form.e, r)
}

// LinearCombination returns Σᵢ wᵢ·fᵢ.
func LinearCombination(w []float64, f []Form) Form {
	var ctx *Context
	for _, fi := range f {
		if fi.bad {
			return Form{bad: true}
		}
		if ctx == nil {
			ctx = fi.ctx
		} else if fi.ctx != nil && fi.ctx != ctx {
			panic("affine: forms from different contexts")
		}
	}
	acc := newAccumulator(ctx)
	c := interval.Point(0)
	for i, fi := range f {
		c = c.Add(interval.Point(w[i]).Mul(interval.Point(fi.c)))
		acc.err(interval.MulUp(math.Abs(w[i]), fi.e))
	}
	acc.center(c)
	if ctx != nil {
		for j := 0; j < ctx.dim; j++ {
			s := interval.Point(0)
			for i, fi := range f {
				s = s.Add(interval.Point(w[i]).Mul(interval.Point(fi.Coef(j))))
			}
			acc.coef(j, s)
		}
	}
	return acc.form
}
