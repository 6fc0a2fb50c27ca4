package interval

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomInterval(rng *rand.Rand, scale float64) Interval {
	a := (rng.Float64()*2 - 1) * scale
	b := (rng.Float64()*2 - 1) * scale
	return New(math.Min(a, b), math.Max(a, b))
}

func sample(rng *rand.Rand, x Interval) float64 {
	switch rng.Intn(4) {
	case 0:
		return x.Lo
	case 1:
		return x.Hi
	}
	return x.Lo + rng.Float64()*(x.Hi-x.Lo)
}

func TestAddRoundsOutward(t *testing.T) {
	a, b := 0.1, 0.2
	s := Point(a).Add(Point(b))

	// a+b rounds up to 0.30000000000000004, so only Lo moves.
	assert.Equal(t, a+b, s.Hi)
	assert.Equal(t, math.Nextafter(a+b, 0), s.Lo)
	assert.True(t, s.Contains(0.3))

	exact := Point(1).Add(Point(2))
	assert.True(t, exact.Equal(Point(3)))
}

func TestArithmeticContainsSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		x, y := randomInterval(rng, 10), randomInterval(rng, 10)
		a, b := sample(rng, x), sample(rng, y)

		assert.True(t, x.Add(y).Contains(a+b), "%v + %v ∌ %v", x, y, a+b)
		assert.True(t, x.Sub(y).Contains(a-b), "%v - %v ∌ %v", x, y, a-b)
		assert.True(t, x.Mul(y).Contains(a*b), "%v * %v ∌ %v", x, y, a*b)
		assert.True(t, x.Sqr().Contains(a*a), "%v² ∌ %v", x, a*a)
		if !y.ContainsZero() {
			assert.True(t, x.Div(y).Contains(a/b), "%v / %v ∌ %v", x, y, a/b)
		}
	}
}

func TestElementaryContainsSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		x := randomInterval(rng, 8)
		a := sample(rng, x)

		assert.True(t, x.Sin().Contains(math.Sin(a)), "sin %v ∌ %v", x, math.Sin(a))
		assert.True(t, x.Cos().Contains(math.Cos(a)), "cos %v ∌ %v", x, math.Cos(a))
		assert.True(t, x.Atan().Contains(math.Atan(a)), "atan %v", x)
		assert.True(t, x.Exp().Contains(math.Exp(a)), "exp %v", x)
		assert.True(t, x.Abs().Contains(math.Abs(a)), "abs %v", x)
		assert.True(t, x.Pow(3).Contains(a*a*a), "%v³", x)

		if x.Lo > 0 {
			assert.True(t, x.Log().Contains(math.Log(a)), "log %v", x)
			assert.True(t, x.Sqrt().Contains(math.Sqrt(a)), "sqrt %v", x)
		}
	}
}

func TestSinCosExtrema(t *testing.T) {
	s := New(0, math.Pi).Sin()
	assert.Equal(t, 1.0, s.Hi)
	assert.LessOrEqual(t, s.Lo, 0.0)

	c := New(-0.1, 0.1).Cos()
	assert.Equal(t, 1.0, c.Hi)

	assert.True(t, New(-10, 10).Sin().Equal(New(-1, 1)))
}

func TestSqrIsTighterThanMul(t *testing.T) {
	x := New(-2, 1)

	assert.True(t, x.Sqr().Equal(New(0, 4)))
	assert.True(t, x.Mul(x).Equal(New(-2, 4)))
	assert.True(t, x.Pow(3).Equal(New(-8, 1)))
	assert.True(t, New(1, 2).Pow(-1).Equal(New(0.5, 1)))
}

func TestDomainErrorsPropagate(t *testing.T) {
	assert.False(t, New(-1, 4).Sqrt().Valid())
	assert.False(t, New(0, 1).Log().Valid())
	assert.False(t, New(1, 2).Div(New(-1, 1)).Valid())
	assert.False(t, New(-1, 1).Inv().Valid())

	bad := New(-1, 4).Sqrt()
	assert.False(t, bad.Add(Point(1)).Valid())
	assert.False(t, bad.Mul(Point(0)).Valid())
	assert.False(t, bad.Exp().Valid())
}

func TestDivExtended(t *testing.T) {
	tests := []struct {
		name       string
		num, den   Interval
		pieces     int
		first, snd Interval
	}{
		{"regular", New(1, 2), New(2, 4), 1, New(0.25, 1), Interval{}},
		{"gap", New(1, 2), New(-1, 1), 2, New(math.Inf(-1), -1), New(1, math.Inf(1))},
		{"half line", New(1, 2), New(0, 1), 1, New(1, math.Inf(1)), Interval{}},
		{"negative numerator", New(-2, -1), New(-1, 1), 2, New(math.Inf(-1), -1), New(1, math.Inf(1))},
		{"zero in both", New(-1, 1), New(-1, 1), 1, Entire(), Interval{}},
		{"zero divisor", New(1, 2), Point(0), 0, Interval{}, Interval{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, snd, n := DivExtended(tt.num, tt.den)
			require.Equal(t, tt.pieces, n)
			if n > 0 {
				assert.True(t, first.Equal(tt.first), "got %v", first)
			}
			if n > 1 {
				assert.True(t, snd.Equal(tt.snd), "got %v", snd)
			}
		})
	}
}

func TestMidStaysInside(t *testing.T) {
	x := New(1, math.Nextafter(1, 2))
	m := x.Mid()
	assert.True(t, m == x.Lo || m == x.Hi)

	huge := New(-math.MaxFloat64, math.MaxFloat64)
	assert.True(t, huge.Contains(huge.Mid()))

	assert.Equal(t, 0.0, Entire().Mid())
	assert.GreaterOrEqual(t, New(1, 3).Rad(), 1.0)
}

func TestNewBox(t *testing.T) {
	b, err := NewBox([]float64{-1, 0}, []float64{1, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Widest())
	assert.Equal(t, 4.0, b.MaxWidth())
	assert.Equal(t, []float64{0, 2}, b.Mid())

	_, err = NewBox([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, ErrInvalidBox)

	_, err = NewBox([]float64{0}, []float64{math.Inf(1)})
	assert.ErrorIs(t, err, ErrInvalidBox)

	_, err = NewBox([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidBox)

	_, err = NewBox(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidBox)
}

func TestBoxRelations(t *testing.T) {
	outer := Box{New(0, 4), New(0, 4)}
	inner := Box{New(1, 2), New(1, 2)}
	touching := Box{New(4, 5), New(0, 1)}
	apart := Box{New(5, 6), New(0, 1)}

	assert.True(t, inner.Subset(outer))
	assert.True(t, inner.Interior(outer))
	assert.False(t, outer.Subset(inner))
	assert.True(t, touching.Overlaps(outer))
	assert.False(t, touching.Interior(outer))
	assert.False(t, apart.Overlaps(outer))

	got, ok := touching.Intersect(outer)
	require.True(t, ok)
	assert.True(t, got.Equal(Box{Point(4), New(0, 1)}))

	_, ok = apart.Intersect(outer)
	assert.False(t, ok)

	assert.True(t, inner.Hull(apart).Equal(Box{New(1, 6), New(0, 2)}))
}

func TestBoxSplit(t *testing.T) {
	b := Box{New(0, 1), New(0, 4)}
	left, right := b.Split(b.Widest(), 2)

	assert.True(t, left.Equal(Box{New(0, 1), New(0, 2)}))
	assert.True(t, right.Equal(Box{New(0, 1), New(2, 4)}))
	assert.True(t, b.Equal(Box{New(0, 1), New(0, 4)}), "Split must not modify its receiver")
	assert.Equal(t, "([0, 1], [0, 4])", b.String())
}
