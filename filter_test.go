package vsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/thalesfsp/vsolve/affine"
)

func TestExcludesZero(t *testing.T) {
	assert.True(t, excludesZero(box(-1, 1, 0.5, 2)))
	assert.False(t, excludesZero(box(-1, 1, 0, 2)))
}

// Over x ∈ [0, 2] both x - 0.5 and x - 1.5 reach zero, but never together.
func TestLinearProgramSeparatesComponents(t *testing.T) {
	x := affine.Lift(box(0, 2))[0]

	apart := []affine.Form{x.AddConst(-0.5), x.AddConst(-1.5)}
	assert.False(t, formsExcludeZero(apart))
	assert.True(t, linearProgramExcludesZero(apart, 1))

	common := []affine.Form{x.AddConst(-1), x.MulConst(2).AddConst(-2)}
	assert.False(t, linearProgramExcludesZero(common, 1))
}

func TestLinearProgramTwoDimensions(t *testing.T) {
	forms := affine.Lift(box(0, 1, 0, 1))
	x, y := forms[0], forms[1]

	// x + y = 3 has no solution in the unit square.
	assert.True(t, linearProgramExcludesZero([]affine.Form{x.Add(y).AddConst(-3), x.Sub(y)}, 2))
	assert.False(t, linearProgramExcludesZero([]affine.Form{x.Add(y).AddConst(-1), x.Sub(y)}, 2))
	assert.False(t, linearProgramExcludesZero(nil, 2))
}

func TestPreconditionedExcludesZero(t *testing.T) {
	x := affine.Lift(box(0, 2))[0]
	forms := []affine.Form{x.AddConst(-0.5), x.AddConst(-1.5)}

	// (x - 0.5) - (x - 1.5) = 1
	r := mat.NewDense(1, 2, []float64{1, -1})
	assert.True(t, preconditionedExcludesZero(r, forms))

	r = mat.NewDense(1, 2, []float64{1, 0})
	assert.False(t, preconditionedExcludesZero(r, forms))
}
