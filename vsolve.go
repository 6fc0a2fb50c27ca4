package vsolve

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/thalesfsp/vsolve/interval"
)

//////
// Exported functionalities.
//////

// DefaultConfig returns the default configuration of the all-solutions
// search. Solutions and a summary are logged (Verbosity 1).
func DefaultConfig() Config {
	return Config{
		Verbosity:              1,
		Logger:                 nil, // Default to logrus.StandardLogger().
		ProgressChan:           nil, // Default to no progress updates.
		MaxIterations:          0,
		MaxRetries:             16,
		ShrinkFactor:           0.1,
		MaxCondition:           1e12,
		Trim:                   true,
		SplitOnTrim:            false,
		InflationSteps:         3,
		MaxRefinements:         16,
		MaxMergeIterations:     8,
		LinearProgramming:      false,
		MinWidth:               0,
		WidthLimit:             1e-5,
		MaxSubdivisions:        100000,
		Unify:                  true,
		Samplers:               []SamplerFunc{CenterSampler, SteepestSampler},
		LocalSearch:            false,
		LocalSearchEvaluations: 200,
	}
}

// DefaultOptimizeConfig returns the default configuration of the global
// optimizers. It is DefaultConfig with logging turned off.
func DefaultOptimizeConfig() Config {
	config := DefaultConfig()
	config.Verbosity = 0
	return config
}

// Validate checks that every field of c is usable. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Verbosity >= 0 && c.Verbosity <= 2, "Verbosity %d not in [0, 2]", c.Verbosity)
	check(c.MaxIterations >= 0, "MaxIterations %d is negative", c.MaxIterations)
	check(c.MaxRetries >= 0, "MaxRetries %d is negative", c.MaxRetries)
	check(c.ShrinkFactor > 0 && c.ShrinkFactor < 1, "ShrinkFactor %g not in (0, 1)", c.ShrinkFactor)
	check(c.MaxCondition > 1, "MaxCondition %g must exceed 1", c.MaxCondition)
	check(c.InflationSteps >= 0, "InflationSteps %d is negative", c.InflationSteps)
	check(c.MaxRefinements >= 0, "MaxRefinements %d is negative", c.MaxRefinements)
	check(c.MaxMergeIterations >= 0, "MaxMergeIterations %d is negative", c.MaxMergeIterations)
	check(c.MinWidth >= 0 && !math.IsInf(c.MinWidth, 0), "MinWidth %g must be finite and non-negative", c.MinWidth)
	check(c.WidthLimit >= 0 && !math.IsInf(c.WidthLimit, 0), "WidthLimit %g must be finite and non-negative", c.WidthLimit)
	check(c.MaxSubdivisions >= 0, "MaxSubdivisions %d is negative", c.MaxSubdivisions)
	check(!c.LocalSearch || c.LocalSearchEvaluations > 0, "LocalSearchEvaluations %d must be positive", c.LocalSearchEvaluations)
	for i, p := range c.Samplers {
		check(p != nil, "Samplers[%d] is nil", i)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// NewBox builds a search box from one Range per coordinate.
//
// Usage example:
//
//	box, err := NewBox(
//	    Range[float64]{Min: 0, Max: 1e10},
//	    Range[float64]{Min: 0, Max: 1e10},
//	)
func NewBox[T constraints.Integer | constraints.Float](ranges ...Range[T]) (Box, error) {
	lo := make([]float64, len(ranges))
	hi := make([]float64, len(ranges))
	for i, r := range ranges {
		lo[i], hi[i] = float64(r.Min), float64(r.Max)
	}
	b, err := interval.NewBox(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBox, err)
	}
	return b, nil
}

// AllSolutions encloses every root of sys in init.
//
// Parameters:
// - config: Config controlling the search, see DefaultConfig
// - sys: The function F: Rⁿ → Rⁿ, see NewSystem
// - init: The initial box
//
// Returns:
// - *Result: Verified solutions and the boxes that could not be decided
// - error: ErrInvalidConfig, ErrNilFunction, ErrInvalidBox or ErrDimension
//
// Usage example:
//
//	result, err := AllSolutions(DefaultConfig(), sys, box)
//	if err != nil {
//	    return err
//	}
//
//	for _, s := range result.Solutions {
//	    fmt.Println(s.Box, s.Boundary)
//	}
//
// How it works:
// 1. Boxes are taken from a FIFO work list, starting with init
// 2. For each box:
//   - Interval, affine and preconditioned affine evaluations try to prove
//     that F has no zero in it
//   - The Krawczyk operator tries to prove a unique root, or narrows the box
//   - Interval Gauss-Seidel trimming narrows it further
//   - Boxes that were not decided are bisected
//
// 3. Verified roots are tightened and merged with duplicates
//
// Important notes:
//   - Every root in init lies in a Solution box or in a Degenerate or
//     Undecided box
//   - Roots on the boundary of init are found and flagged with Boundary
//   - Each Solution box contains exactly one root
func AllSolutions(config Config, sys System, init Box) (*Result, error) {
	return AllSolutionsFrom(config, sys, init)
}

// AllSolutionsFrom is AllSolutions seeded with several boxes, e.g. the
// Degenerate or Undecided boxes of a previous search.
func AllSolutionsFrom(config Config, sys System, seeds ...Box) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := sys.validate(); err != nil {
		return nil, err
	}
	n, err := checkSeeds(seeds)
	if err != nil {
		return nil, err
	}
	if _, err := sys.evalInterval(seeds[0], n); errors.Is(err, ErrDimension) {
		return nil, err
	}

	return newRootSolver(config, sys, seeds).run(), nil
}

// Minimize encloses the global minimum of the scalar function sys over init
// and the boxes where it may be attained.
//
// Parameters:
// - config: Config controlling the search, see DefaultOptimizeConfig
// - sys: The function f: Rⁿ → R, see NewSystem
// - init: The initial box
//
// Returns:
// - *OptimumResult: Value encloses min f over init, Boxes cover its minimizers
// - error: ErrInvalidConfig, ErrNilFunction, ErrInvalidBox or ErrDimension
//
// How it works:
//  1. The best known upper bound δ starts at f(mid(init)), optionally
//     improved by a local search
//  2. For each box:
//     - Boxes whose interval, affine or mean-value lower bound exceeds δ
//     are discarded
//     - Sample points lower δ
//     - Boxes where f is monotone in a coordinate are discarded, or reduced
//     to their face on the boundary of init
//     - Boxes narrower than WidthLimit are accepted, the others bisected
//
// 3. Accepted boxes whose lower bound exceeds the final δ are dropped
func Minimize(config Config, sys System, init Box) (*OptimumResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := sys.validate(); err != nil {
		return nil, err
	}
	if _, err := checkSeeds([]Box{init}); err != nil {
		return nil, err
	}
	if _, err := sys.evalInterval(init, 1); errors.Is(err, ErrDimension) {
		return nil, err
	}

	return newMinimizer(config, sys, init).run(), nil
}

// Maximize encloses the global maximum of sys over init. It minimizes -f.
func Maximize(config Config, sys System, init Box) (*OptimumResult, error) {
	res, err := Minimize(config, sys.Negate(), init)
	if err != nil {
		return nil, err
	}
	res.Value = res.Value.Neg()
	return res, nil
}

// MinimizeValue returns only the enclosure of the global minimum.
func MinimizeValue(config Config, sys System, init Box) (interval.Interval, error) {
	res, err := Minimize(config, sys, init)
	if err != nil {
		return interval.Invalid(), err
	}
	return res.Value, nil
}

// MaximizeValue returns only the enclosure of the global maximum.
func MaximizeValue(config Config, sys System, init Box) (interval.Interval, error) {
	res, err := Maximize(config, sys, init)
	if err != nil {
		return interval.Invalid(), err
	}
	return res.Value, nil
}
