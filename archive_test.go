package vsolve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalesfsp/vsolve/interval"
)

func TestArchive(t *testing.T) {
	a := newArchive()
	sol := Solution{Box: box(0.4, 0.6), Region: box(0, 1)}
	a.Update(sol)

	// Update stores a copy.
	sol.Box[0] = interval.Point(7)
	assert.True(t, a.At(0).Box.Equal(box(0.4, 0.6)))

	assert.Equal(t, []int{0}, a.Overlapping(box(0.9, 2)))
	assert.Empty(t, a.Overlapping(box(2, 3)))

	got := a.At(0)
	got.Box = box(0.5, 0.55)
	a.Set(0, got)
	got.Box[0] = interval.Point(9)

	require.Equal(t, 1, a.Len())
	assert.True(t, a.Solutions()[0].Box.Equal(box(0.5, 0.55)))
}

func TestCompare(t *testing.T) {
	s := newRootSolver(quietSolverConfig(), circleSystem(), []Box{box(-2, 2, -2, 2)})

	t.Run("merged", func(t *testing.T) {
		old := Solution{Box: box(0.70, 0.71, 0.70, 0.71), Region: box(0.6, 0.8, 0.6, 0.8)}
		cand := Solution{Box: box(0.705, 0.709, 0.705, 0.709), Region: box(0.70, 0.72, 0.70, 0.72)}

		assert.Equal(t, Merged, s.compare(&cand, &old))

		// The intersection is tightened around the root while it passes the
		// Krawczyk test on its own.
		h := math.Sqrt2 / 2
		assert.True(t, old.Box.Subset(box(0.705, 0.709, 0.705, 0.709)), "box %v", old.Box)
		assert.True(t, old.Box.Contains([]float64{h, h}), "box %v", old.Box)
		assert.Positive(t, old.Refinements)
		assert.Less(t, old.Box.MaxWidth(), 1e-8)
		assert.False(t, old.Boundary)
	})

	t.Run("distinct", func(t *testing.T) {
		old := Solution{Box: box(0.70, 0.71, 0.70, 0.71), Region: box(0.65, 0.75, 0.65, 0.75)}
		cand := Solution{Box: box(0.76, 0.77, 0.76, 0.77), Region: box(0.72, 0.8, 0.72, 0.8)}

		assert.Equal(t, DistinctRoots, s.compare(&cand, &old))
	})

	assert.Equal(t, "merged", Merged.String())
	assert.Equal(t, "distinct", DistinctRoots.String())
	assert.Equal(t, "undecided", Undecided.String())
}

func TestResolveKeepsOneCopyPerRoot(t *testing.T) {
	s := newRootSolver(quietSolverConfig(), circleSystem(), []Box{box(-2, 2, -2, 2)})

	s.resolve(Solution{Box: box(0.70, 0.71, 0.70, 0.71), Region: box(0.6, 0.8, 0.6, 0.8)})
	s.resolve(Solution{Box: box(0.705, 0.709, 0.705, 0.709), Region: box(0.70, 0.72, 0.70, 0.72)})
	s.resolve(Solution{Box: box(-0.71, -0.70, -0.71, -0.70), Region: box(-0.8, -0.6, -0.8, -0.6)})

	assert.Equal(t, 2, s.archive.Len())
	assert.Equal(t, 1, s.result.Stats.Merged)
}

func TestResolveReportsStoredAmbiguities(t *testing.T) {
	config := quietSolverConfig()
	config.MaxMergeIterations = 0
	s := newRootSolver(config, circleSystem(), []Box{box(0, 1, 0, 1)})

	first := box(0.60, 0.65, 0.60, 0.65)
	s.resolve(Solution{Box: first, Region: box(0.55, 0.66, 0.55, 0.66)})
	s.resolve(Solution{Box: box(0.70, 0.71, 0.70, 0.71), Region: box(0.68, 0.74, 0.68, 0.74)})
	require.Equal(t, 2, s.archive.Len())

	// Undecided against the first solution, then merged into the second:
	// nothing is stored, so nothing is ambiguous.
	s.resolve(Solution{Box: box(0.64, 0.72, 0.64, 0.72), Region: box(0.63, 0.75, 0.63, 0.75)})
	assert.Equal(t, 2, s.archive.Len())
	assert.Equal(t, 1, s.result.Stats.Merged)
	assert.Empty(t, s.result.Ambiguous)

	// Undecided against the first solution only.
	last := box(0.50, 0.61, 0.50, 0.61)
	s.resolve(Solution{Box: last, Region: box(0.45, 0.615, 0.45, 0.615)})
	require.Equal(t, 3, s.archive.Len())
	require.Len(t, s.result.Ambiguous, 1)
	assert.True(t, s.result.Ambiguous[0].First.Equal(first))
	assert.True(t, s.result.Ambiguous[0].Second.Equal(last))
	assert.True(t, s.archive.At(2).Box.Equal(last))
}

func quietSolverConfig() Config {
	config := DefaultConfig()
	config.Verbosity = 0
	return config
}
