package vsolve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
	"github.com/thalesfsp/vsolve/jet"
	"github.com/thalesfsp/vsolve/num"
)

func circle[T num.Scalar[T]](x []T) []T {
	return []T{
		x[0].Sqr().Add(x[1].Sqr()).AddConst(-1),
		x[0].Sub(x[1]),
	}
}

func circleSystem() System {
	return NewSystem(circle[num.Real], circle[interval.Interval], circle[affine.Form], circle[jet.Jet])
}

func box(bounds ...float64) Box {
	b := make(Box, len(bounds)/2)
	for i := range b {
		b[i] = interval.New(bounds[2*i], bounds[2*i+1])
	}
	return b
}

func TestKrawczykLinear(t *testing.T) {
	x := box(0, 1)
	c := []float64{0.5}
	jac := [][]interval.Interval{{interval.Point(2)}}
	r := mat.NewDense(1, 1, []float64{0.5})

	// F(x) = 2x - 1
	k := krawczyk(x, c, []interval.Interval{interval.Point(0)}, jac, r)
	assert.Equal(t, statusUnique, k.status)
	assert.True(t, k.image.Equal(box(0.5, 0.5)))
	assert.Equal(t, 0.0, k.norm)

	// F(x) = 2x - 5
	k = krawczyk(x, c, []interval.Interval{interval.Point(-4)}, jac, r)
	assert.Equal(t, statusEmpty, k.status)
}

func TestKrawczykCircle(t *testing.T) {
	sys := circleSystem()
	x := box(0.6, 0.8, 0.6, 0.8)

	jets, err := sys.evalJet(x, 2)
	require.NoError(t, err)
	jac := jacobian(jets, 2)
	c := x.Mid()
	fc, err := sys.evalPoint(c, 2)
	require.NoError(t, err)
	r, err := invert(midpoint(jac), 1e12)
	require.NoError(t, err)

	k := krawczyk(x, c, fc, jac, r)
	require.Equal(t, statusUnique, k.status)
	h := math.Sqrt2 / 2
	assert.True(t, k.image[0].Contains(h) && k.image[1].Contains(h), "%v", k.image)
	assert.Less(t, k.norm, 1.0)
}

func TestClassify(t *testing.T) {
	x := box(0, 1)

	assert.Equal(t, statusEmpty, classify(x, box(2, 3), 0).status)
	assert.Equal(t, statusUnique, classify(x, box(0.2, 0.8), 5).status)
	assert.Equal(t, statusUnique, classify(x, box(0, 1), 0.5).status)
	assert.Equal(t, statusUnknown, classify(x, box(0, 1), 1.5).status)
	assert.Equal(t, statusUnknown, classify(x, box(0.5, 1.5), 0).status)
	assert.Equal(t, statusUnknown, classify(x, Box{interval.Invalid()}, 0).status)
}

func TestInflate(t *testing.T) {
	b := box(1, 1, 0, 10)
	y := inflate(b)

	assert.True(t, b.Interior(y))
	assert.InDelta(t, 12.0, y[1].Width(), 1e-9)
}

func TestTrim(t *testing.T) {
	identity := [][]interval.Interval{
		{interval.Point(1), interval.Point(0)},
		{interval.Point(0), interval.Point(1)},
	}
	x := box(0, 4, 0, 4)
	c := x.Mid()

	t.Run("linear", func(t *testing.T) {
		// F = (x - 1, y - 2)
		got := trim(x, c, []interval.Interval{interval.Point(1), interval.Point(0)}, identity, false)
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(box(1, 1, 2, 2)), "%v", got[0])
	})

	t.Run("no root", func(t *testing.T) {
		// F = (x - 10, y)
		got := trim(x, c, []interval.Interval{interval.Point(-8), interval.Point(2)}, identity, false)
		assert.Nil(t, got)
	})

	t.Run("gap", func(t *testing.T) {
		// F = x² - 1 over [-2, 2]: b = F(0), m = F'([-2, 2])
		x := box(-2, 2)
		b := []interval.Interval{interval.Point(-1)}
		m := [][]interval.Interval{{interval.New(-4, 4)}}

		pieces := trim(x, []float64{0}, b, m, true)
		require.Len(t, pieces, 2)
		assert.True(t, pieces[0].Equal(box(0.25, 2)), "%v", pieces[0])
		assert.True(t, pieces[1].Equal(box(-2, -0.25)), "%v", pieces[1])

		hull := trim(x, []float64{0}, b, m, false)
		require.Len(t, hull, 1)
		assert.True(t, hull[0].Equal(x))
	})
}

func TestInvert(t *testing.T) {
	r, err := invert(mat.NewDense(2, 2, []float64{2, 0, 0, 4}), 1e12)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(r, mat.NewDense(2, 2, []float64{0.5, 0, 0, 0.25}), 1e-15))

	_, err = invert(mat.NewDense(2, 2, []float64{1, 2, 2, 4}), 1e12)
	assert.ErrorIs(t, err, ErrSingular)

	_, err = invert(mat.NewDense(2, 2, []float64{1, math.NaN(), 0, 1}), 1e12)
	assert.ErrorIs(t, err, ErrSingular)

	_, err = invert(mat.NewDense(2, 2, []float64{1, 0, 0, 1e-9}), 1e6)
	assert.ErrorIs(t, err, ErrSingular)

	_, err = invert(mat.NewDense(1, 2, []float64{1, 0}), 1e6)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestAffineSlopes(t *testing.T) {
	sys := circleSystem()
	x := box(0, 2, 1, 1)

	forms, err := sys.evalAffine(x, 2)
	require.NoError(t, err)
	jets, err := sys.evalJet(x, 2)
	require.NoError(t, err)

	l := affineSlopes(forms, x, jacobian(jets, 2))

	// Column 0 comes from the slope of x² around the center x = 1.
	assert.InDelta(t, 2.0, l.At(0, 0), 1e-12)

	// Column 1 is a point coordinate and comes from the Jacobian: ∂/∂y = (2y, -1).
	assert.InDelta(t, 2.0, l.At(0, 1), 1e-12)
	assert.InDelta(t, -1.0, l.At(1, 1), 1e-12)
	assert.InDelta(t, 1.0, l.At(1, 0), 1e-12)
}

func TestPreconditionerFallsBackToJacobian(t *testing.T) {
	x := box(-1, 1, -1, 1)
	jac := [][]interval.Interval{
		{interval.New(1, 3), interval.Point(0)},
		{interval.Point(0), interval.New(3, 5)},
	}

	// Noise-free forms give an all-zero slope matrix.
	forms := []affine.Form{affine.FromInterval(interval.New(-1, 1)), affine.FromInterval(interval.New(-2, 2))}
	_, err := invert(affineSlopes(forms, x, jac), 1e12)
	require.ErrorIs(t, err, ErrSingular)

	r, err := preconditioner(forms, x, jac, 1e12)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(r, mat.NewDense(2, 2, []float64{0.5, 0, 0, 0.25}), 1e-15))
}

func TestContractAtVerifiesSquares(t *testing.T) {
	s := newRootSolver(quietSolverConfig(), circleSystem(), []Box{box(-2, 2, -2, 2)})

	// The slopes of x² + y² - 1 come from its noise terms.
	res, err := s.contractAt(box(0.6, 0.8, 0.6, 0.8))
	require.NoError(t, err)
	assert.Equal(t, statusUnique, res.status)
}
