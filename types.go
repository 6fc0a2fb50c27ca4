package vsolve

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
)

// Box is an axis-aligned box, one interval per coordinate.
type Box = interval.Box

// ProgressUpdate represents the current state of a search.
type ProgressUpdate struct {
	// Phase is "AllSolutions" or "Optimization".
	Phase string

	// CurrentIteration is the number of boxes processed so far, retries
	// included.
	CurrentIteration int

	// Pending is the number of boxes waiting in the work list.
	Pending int

	// Solutions is the number of verified roots (all-solutions search) or
	// accepted terminal boxes (optimization) found so far.
	Solutions int

	// CurrentBox is the box being processed.
	CurrentBox Box

	// CurrentBest is the best upper bound of the minimum found so far. It is
	// +Inf during an all-solutions search.
	CurrentBest float64
}

// Range defines one coordinate of a search box.
//
// Type Parameter:
//   - T: The numeric type of the bounds (any integer or float type)
//
// Fields:
// - Min: The lower (inclusive) bound
// - Max: The upper (inclusive) bound
//
// Usage:
//
//	// Example 1: A symmetric range
//	x := Range[float64]{Min: -10, Max: 10}
//
//	// Example 2: Integer bounds are converted exactly
//	y := Range[int]{Min: 0, Max: 20000}
//
// Validation:
// - Min must be less than or equal to Max
// - Both bounds must be finite
type Range[T constraints.Integer | constraints.Float] struct {
	// Min defines the lower (inclusive) bound of the coordinate.
	Min T

	// Max defines the upper (inclusive) bound of the coordinate.
	Max T
}

// SamplerFunc picks a point of box at which the objective is evaluated to
// tighten the best known upper bound of the minimum. form is the affine
// evaluation of the objective over box and tells in which direction it
// decreases.
//
// Built-in samplers:
// - CenterSampler: the midpoint of the box
// - SteepestSampler: the corner the linear part of form points down to
//
// Usage example:
//
//	config := DefaultOptimizeConfig()
//	config.Samplers = []SamplerFunc{CenterSampler}
//
// Implementation notes for custom samplers:
// - Must return a point inside box
// - Must not retain box or form
type SamplerFunc func(box Box, form affine.Form) []float64

// Config holds the parameters of both searches.
//
// Fields explanation:
// - Verbosity, Logger, ProgressChan: diagnostics
// - MaxIterations ... LinearProgramming: root search
// - WidthLimit ... LocalSearchEvaluations: optimization
//
// Usage example:
//
//	config := DefaultConfig()
//
//	// Stop after 100000 boxes
//	config.MaxIterations = 100000
//
//	// Keep both pieces of a gap produced by trimming
//	config.SplitOnTrim = true
//
// Note:
// - Create separate configs for parallel searches.
type Config struct {
	// Verbosity selects what is logged: 0 nothing, 1 solutions and a summary,
	// 2 also every processed box.
	Verbosity int

	// Logger receives the diagnostics. If nil, logrus.StandardLogger() is
	// used.
	Logger logrus.FieldLogger

	// ProgressChan is used to send progress updates during the search.
	// If nil, no updates will be sent.
	ProgressChan chan<- ProgressUpdate

	// MaxIterations caps the number of processed boxes. Boxes still pending
	// when it is reached are returned as undecided. 0 means unlimited.
	MaxIterations int

	// MaxRetries bounds how many times a box is contracted in place before
	// it is bisected.
	MaxRetries int

	// ShrinkFactor is the minimal mean relative width reduction for which a
	// contracted box is processed again instead of bisected.
	// Recommended range: 0.05-0.5
	ShrinkFactor float64

	// MaxCondition is the largest acceptable 1-norm condition number of the
	// linear bound inverted for preconditioning.
	MaxCondition float64

	// Trim enables interval Gauss-Seidel narrowing of boxes the Krawczyk
	// operator could not decide.
	Trim bool

	// SplitOnTrim keeps the two pieces produced when trimming cuts a gap out
	// of a coordinate. When false their hull is kept.
	SplitOnTrim bool

	// InflationSteps bounds the epsilon-inflation attempts made to verify a
	// root close to the face of a box.
	InflationSteps int

	// MaxRefinements bounds the Krawczyk iterations spent tightening a
	// verified root.
	MaxRefinements int

	// MaxMergeIterations bounds the refinement rounds spent deciding whether
	// two overlapping solutions enclose the same root.
	MaxMergeIterations int

	// LinearProgramming enables the linear-programming non-existence test on
	// the affine forms. It is slower and only pays off on large boxes.
	LinearProgramming bool

	// MinWidth declares boxes whose widest coordinate is narrower than this
	// degenerate. 0 bisects until floating-point resolution is exhausted.
	MinWidth float64

	// WidthLimit is the width below which an optimization box is accepted as
	// terminal.
	WidthLimit float64

	// MaxSubdivisions caps the bisections of an optimization. Boxes still
	// pending when it is reached are returned as undecided. 0 means
	// unlimited.
	MaxSubdivisions int

	// Unify merges overlapping terminal boxes of an optimization into their
	// hull.
	Unify bool

	// Samplers are evaluated on every optimization box to improve the upper
	// bound of the minimum.
	Samplers []SamplerFunc

	// LocalSearch runs a derivative-free local minimization from the center
	// of the initial box before branching, which usually gives a good upper
	// bound early.
	LocalSearch bool

	// LocalSearchEvaluations bounds the function evaluations of LocalSearch.
	LocalSearchEvaluations int
}

// Solution is a box proven to contain exactly one root.
type Solution struct {
	// Box encloses the root.
	Box Box

	// Region is a box in which the root is known to be unique. It contains
	// Box.
	Region Box

	// Boundary is set when Box is not contained in the initial box, i.e. the
	// root may lie on or just outside its boundary.
	Boundary bool

	// Refinements counts the Krawczyk tests Box and its predecessors passed
	// while being tightened. When positive, Box passes the test on its own.
	Refinements int
}

// Ambiguity reports two solutions whose duplicate status stayed undecided.
// Both are kept in Result.Solutions.
type Ambiguity struct {
	First  Box
	Second Box
}

// Stats are the counters of a search.
type Stats struct {
	Iterations        int
	Subdivisions      int
	Retries           int
	NonExistenceTests int
	ExistenceTests    int
	NonExistent       int
	Existent          int
	Unknown           int
	Inflations        int
	Merged            int
}

// Result is the outcome of an all-solutions search.
type Result struct {
	// Solutions holds one entry per verified root.
	Solutions []Solution

	// Undecided holds the boxes left unprocessed when MaxIterations was hit.
	Undecided []Box

	// Degenerate holds the boxes that could not be bisected any further.
	// They may contain roots (typically multiple roots).
	Degenerate []Box

	// Ambiguous lists solution pairs that may enclose the same root.
	Ambiguous []Ambiguity

	Stats Stats
}

// Boxes returns the boxes of the solutions.
func (r *Result) Boxes() []Box {
	boxes := make([]Box, len(r.Solutions))
	for i, s := range r.Solutions {
		boxes[i] = s.Box
	}
	return boxes
}

// OptimumResult is the outcome of a global optimization.
type OptimumResult struct {
	// Boxes cover every point of the initial box where the optimum may be
	// attained, up to WidthLimit.
	Boxes []Box

	// Value encloses the optimal value.
	Value interval.Interval

	// Best is the point with the best rigorously evaluated objective.
	Best []float64

	// Undecided holds the boxes left unprocessed when MaxSubdivisions was
	// hit. Value accounts for them.
	Undecided []Box

	// Degenerate holds boxes above WidthLimit that could not be bisected.
	// They are also in Boxes.
	Degenerate []Box

	Stats Stats
}
