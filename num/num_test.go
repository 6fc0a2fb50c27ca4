package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thalesfsp/vsolve/interval"
)

func poly[T Scalar[T]](x []T) []T {
	return []T{
		x[0].Pow(3).Sub(x[1].MulConst(2)).AddConst(1),
		x[0].Mul(x[1]).Add(x[1].Const(0.5)).Abs(),
	}
}

func TestRealArithmetic(t *testing.T) {
	x, y := Real(3), Real(4)

	assert.Equal(t, Real(7), x.Add(y))
	assert.Equal(t, Real(-1), x.Sub(y))
	assert.Equal(t, Real(25), x.Sqr().Add(y.Sqr()))
	assert.Equal(t, Real(5), x.Sqr().Add(y.Sqr()).Sqrt())
	assert.Equal(t, Real(27), x.Pow(3))
	assert.Equal(t, Real(0.25), y.Inv())
	assert.Equal(t, Real(3), x.Neg().Abs())
	assert.InDelta(t, 1.0, float64(Real(math.E).Log()), 1e-15)
}

func TestRealDomainErrors(t *testing.T) {
	assert.False(t, Real(1).Div(0).Valid())
	assert.False(t, Real(0).Inv().Valid())
	assert.False(t, Real(-1).Sqrt().Valid())
	assert.False(t, Real(0).Log().Valid())
	assert.False(t, Real(math.Inf(1)).Valid())
	assert.True(t, Real(0).Sqrt().Valid())
}

func TestLiftAndFloats(t *testing.T) {
	assert.Equal(t, []Real{1, 2, 3}, Lift([]int{1, 2, 3}))
	assert.Equal(t, []float64{0.5, -2}, Floats(Lift([]float32{0.5, -2})))
}

func TestRepresentationsAgree(t *testing.T) {
	p := []float64{1.5, -0.25}

	pt := poly(Lift(p))
	iv := poly([]interval.Interval{interval.Point(p[0]), interval.Point(p[1])})

	for i := range pt {
		assert.True(t, iv[i].Contains(float64(pt[i])), "%v ∌ %v", iv[i], pt[i])
	}
}
