package vsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
	"github.com/thalesfsp/vsolve/jet"
	"github.com/thalesfsp/vsolve/num"
)

func bowl[T num.Scalar[T]](x []T) []T {
	return []T{x[0].AddConst(-0.3).Sqr().Add(x[1].AddConst(0.2).Sqr())}
}

func bowlSystem() System {
	return NewSystem(bowl[num.Real], bowl[interval.Interval], bowl[affine.Form], bowl[jet.Jet])
}

func TestSamplers(t *testing.T) {
	b := box(0, 1, 0, 1)
	forms := affine.Lift(b)
	downhill := forms[0].Sub(forms[1])

	assert.Equal(t, []float64{0.5, 0.5}, CenterSampler(b, downhill))
	assert.Equal(t, []float64{0, 1}, SteepestSampler(b, downhill))
	assert.Equal(t, []float64{0.5, 0.5}, SteepestSampler(b, forms[0].AddConst(-2).Log()))
}

func TestLocalSearch(t *testing.T) {
	p, ok := localSearch(bowlSystem(), box(-1, 1, -1, 1), 200)
	require.True(t, ok)

	assert.InDelta(t, 0.3, p[0], 0.05)
	assert.InDelta(t, -0.2, p[1], 0.05)

	// The minimum lies outside the box, the result stays inside.
	p, ok = localSearch(bowlSystem(), box(1, 2, 1, 2), 200)
	require.True(t, ok)
	assert.True(t, box(1, 2, 1, 2).Contains(p))
}

func TestMinimizerUnifiesAcceptedBoxes(t *testing.T) {
	s := newMinimizer(DefaultOptimizeConfig(), bowlSystem(), box(-1, 1, -1, 1))

	s.accept(box(0, 0.1, 0, 0.1))
	s.accept(box(0.5, 0.6, 0.5, 0.6))
	s.accept(box(0.1, 0.5, 0.1, 0.5))

	require.Len(t, s.accepted, 1)
	assert.True(t, s.accepted[0].Equal(box(0, 0.6, 0, 0.6)))
}

func TestMinimizerObserve(t *testing.T) {
	s := newMinimizer(DefaultOptimizeConfig(), bowlSystem(), box(-1, 1, -1, 1))

	s.observe([]float64{0, 0})
	assert.InDelta(t, 0.13, s.best, 1e-12)
	s.observe([]float64{1, 1})
	assert.InDelta(t, 0.13, s.best, 1e-12)
	s.observe([]float64{0.3, -0.2})
	assert.InDelta(t, 0, s.best, 1e-15)
	assert.Equal(t, []float64{0.3, -0.2}, s.bestPoint)

	mv := s.meanValueBound(box(0.2, 0.4, -0.3, -0.1), []interval.Interval{interval.New(-0.2, 0.2), interval.New(-0.2, 0.2)})
	assert.True(t, mv.Contains(0))
}
