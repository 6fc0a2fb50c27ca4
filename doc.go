// Package vsolve provides verified branch-and-bound solvers built on interval
// and affine arithmetic. It encloses every root of a nonlinear system inside
// a box, or the global minimum (maximum) of a scalar function over a box,
// with results that are mathematically guaranteed rather than approximate.
//
// # Features
//
// The package includes the following key features:
//
//   - All-solutions search: every root of F: Rⁿ → Rⁿ inside the initial box
//     is enclosed in a small box proven to contain exactly one root
//   - Global optimization: encloses the global minimum (or maximum) value
//     of f: Rⁿ → R and the boxes where it can be attained
//   - Several numeric representations: the same function body is evaluated
//     with plain intervals, affine forms and interval derivatives
//   - Krawczyk contraction: existence and uniqueness proofs that reuse the
//     linear part of the affine evaluation as preconditioner
//   - Trimming: interval Gauss-Seidel narrowing before bisection
//   - Duplicate resolution: roots found twice on shared faces are merged
//   - Progress Monitoring: updates on the search via channels
//   - Structured diagnostics through an injectable logrus logger
//
// # Writing a problem
//
// A problem is a generic function over num.Scalar, instantiated once per
// representation:
//
//	func circle[T num.Scalar[T]](x []T) []T {
//	    return []T{
//	        x[0].Sqr().Add(x[1].Sqr()).AddConst(-1),
//	        x[0].Sub(x[1]),
//	    }
//	}
//
//	sys := vsolve.NewSystem(
//	    circle[num.Real],
//	    circle[interval.Interval],
//	    circle[affine.Form],
//	    circle[jet.Jet],
//	)
//
// # All solutions
//
//	box, _ := vsolve.NewBox(
//	    vsolve.Range[float64]{Min: -10, Max: 10},
//	    vsolve.Range[float64]{Min: -10, Max: 10},
//	)
//
//	result, err := vsolve.AllSolutions(vsolve.DefaultConfig(), sys, box)
//	if err != nil {
//	    return err
//	}
//
//	for _, s := range result.Solutions {
//	    fmt.Println(s.Box)
//	}
//
// Every Solution box contains exactly one root. Result.Degenerate lists boxes
// that could not be bisected any further because floating-point resolution
// was exhausted: they may hide a multiple root and are never dropped
// silently. Result.Undecided holds the boxes left when Config.MaxIterations
// cut the search short.
//
// # Global optimization
//
//	config := vsolve.DefaultOptimizeConfig()
//	config.WidthLimit = 1e-5
//
//	result, err := vsolve.Minimize(config, sys, box)
//
// result.Value encloses the global minimum; result.Boxes cover every point
// where it may be attained. MinimizeValue and MaximizeValue return only the
// value enclosure.
//
// # Configuration
//
// The Config struct allows customization of the search:
//
//	type Config struct {
//	    Verbosity       int                   // 0 silent, 1 solutions, 2 live progress
//	    Logger          logrus.FieldLogger    // Diagnostics sink
//	    ProgressChan    chan<- ProgressUpdate // For progress monitoring
//	    MaxIterations   int                   // Cutoff, 0 = unlimited
//	    ShrinkFactor    float64               // Minimal shrink to retry in place
//	    Trim            bool                  // Interval Gauss-Seidel narrowing
//	    WidthLimit      float64               // Optimization terminal width
//	    Unify           bool                  // Merge overlapping terminal boxes
//	    ...
//	}
//
// # Thread Safety
//
// Each call runs sequentially on the calling goroutine. Affine noise symbols
// live in a context created per evaluation, so independent calls may run
// concurrently on different goroutines.
package vsolve
