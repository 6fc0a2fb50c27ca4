package vsolve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalesfsp/vsolve/interval"
)

func TestBisect(t *testing.T) {
	left, right, err := bisect(box(0, 1, 0, 4), 0)
	require.NoError(t, err)
	assert.True(t, left.Equal(box(0, 1, 0, 2)))
	assert.True(t, right.Equal(box(0, 1, 2, 4)))

	_, _, err = bisect(box(0, 1, 0, 4), 10)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, _, err = bisect(box(1, math.Nextafter(1, 2)), 0)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestWorklistIsFIFO(t *testing.T) {
	var w worklist
	for i := 0; i < 3000; i++ {
		w.push(Box{interval.Point(float64(i))})
	}

	for i := 0; i < 2000; i++ {
		b, ok := w.pop()
		require.True(t, ok)
		require.Equal(t, float64(i), b[0].Lo)
	}
	assert.Equal(t, 1000, w.len())

	w.push(Box{interval.Point(-1)})
	b, _ := w.pop()
	assert.Equal(t, 2000.0, b[0].Lo)

	rest := w.drain()
	assert.Len(t, rest, 1000)
	assert.Equal(t, -1.0, rest[len(rest)-1][0].Lo)
	assert.Equal(t, 0, w.len())

	_, ok := w.pop()
	assert.False(t, ok)
}

func TestShrinkage(t *testing.T) {
	before := box(0, 4, 0, 2, 1, 1)

	assert.InDelta(t, 0.375, shrinkage(before, box(0, 1, 0, 2, 1, 1)), 1e-12)
	assert.Equal(t, 0.0, shrinkage(before, before))
	assert.InDelta(t, 1.0, shrinkage(before, box(1, 1, 1, 1, 1, 1)), 1e-12)
	assert.Equal(t, 0.0, shrinkage(box(1, 1), box(1, 1)))
}

func TestClamp(t *testing.T) {
	b := box(0, 1, -1, 1)
	assert.Equal(t, []float64{1, 0}, clamp(b, []float64{3, math.NaN()}))
	assert.Equal(t, []float64{0, -1}, clamp(b, []float64{-3, -5}))
}
