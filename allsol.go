package vsolve

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// verdict is what processing a box concluded.
type verdict int

const (
	// verdictUnknown asks for the box to be bisected.
	verdictUnknown verdict = iota

	// verdictRejected means the box provably holds no root (or no optimum).
	verdictRejected

	// verdictAccepted means the box was turned into a solution.
	verdictAccepted

	// verdictRetry means the box was narrowed and should be processed again.
	verdictRetry

	// verdictSplit means the box was replaced by the returned pieces.
	verdictSplit
)

// rootSolver runs one all-solutions search.
type rootSolver struct {
	config  Config
	sys     System
	dim     int
	seeds   []Box
	log     logrus.FieldLogger
	queue   worklist
	archive *archive
	result  Result
}

func newRootSolver(config Config, sys System, seeds []Box) *rootSolver {
	return &rootSolver{
		config:  config,
		sys:     sys,
		dim:     len(seeds[0]),
		seeds:   seeds,
		log:     logger(config).WithField("phase", "AllSolutions"),
		archive: newArchive(),
	}
}

func (s *rootSolver) run() *Result {
	for _, seed := range s.seeds {
		s.queue.push(seed.Clone())
	}

	for s.queue.len() > 0 {
		if s.config.MaxIterations > 0 && s.result.Stats.Iterations >= s.config.MaxIterations {
			s.result.Undecided = s.queue.drain()
			if s.config.Verbosity > 0 {
				s.log.WithField("pending", len(s.result.Undecided)).Warn("iteration limit reached")
			}
			break
		}
		x, _ := s.queue.pop()
		s.visit(x)
	}

	s.result.Solutions = s.archive.Solutions()
	if s.config.Verbosity > 0 {
		s.log.WithFields(statsFields(s.result.Stats)).WithFields(logrus.Fields{
			"solutions":  len(s.result.Solutions),
			"degenerate": len(s.result.Degenerate),
			"undecided":  len(s.result.Undecided),
		}).Info("search finished")
	}
	return &s.result
}

// visit processes x, retrying in place while it keeps shrinking, and
// bisects it when nothing else decides it.
func (s *rootSolver) visit(x Box) {
	st := &s.result.Stats
	for retry := 0; ; retry++ {
		st.Iterations++
		s.report(x)

		v, next := s.process(x)
		switch v {
		case verdictRejected:
			st.NonExistent++
			return
		case verdictAccepted:
			st.Existent++
			return
		case verdictSplit:
			s.queue.push(next...)
			return
		case verdictRetry:
			x = next[0]
			if retry < s.config.MaxRetries {
				st.Retries++
				continue
			}
		}

		st.Unknown++
		s.subdivide(x)
		return
	}
}

func (s *rootSolver) subdivide(x Box) {
	left, right, err := bisect(x, s.config.MinWidth)
	if err != nil {
		// A simple root narrowed down to a few ulps is still verified on a
		// slightly inflated box before x counts as degenerate.
		switch s.verifyAround(x) {
		case verdictRejected:
			s.result.Stats.NonExistent++
			return
		case verdictAccepted:
			s.result.Stats.Existent++
			return
		}
		s.result.Degenerate = append(s.result.Degenerate, x)
		if s.config.Verbosity > 0 {
			s.log.WithField("box", x.String()).Warn(ErrDegenerate.Error())
		}
		return
	}
	s.result.Stats.Subdivisions++
	s.queue.push(left, right)
}

// process runs the non-existence filters, the Krawczyk test and trimming on
// x, cheapest first.
func (s *rootSolver) process(x Box) (verdict, []Box) {
	st := &s.result.Stats
	st.NonExistenceTests++

	fx, err := s.sys.evalInterval(x, s.dim)
	if err == nil && excludesZero(fx) {
		return verdictRejected, nil
	}

	forms, err := s.sys.evalAffine(x, s.dim)
	if err != nil {
		return verdictUnknown, nil
	}
	if formsExcludeZero(forms) {
		return verdictRejected, nil
	}

	jets, err := s.sys.evalJet(x, s.dim)
	if err != nil {
		return verdictUnknown, nil
	}
	jac := jacobian(jets, s.dim)
	c := x.Mid()
	fc, err := s.sys.evalPoint(c, s.dim)
	if err != nil {
		return verdictUnknown, nil
	}

	b, m := fc, jac
	if r, err := preconditioner(forms, x, jac, s.config.MaxCondition); err == nil {
		if preconditionedExcludesZero(r, forms) {
			return verdictRejected, nil
		}
		if s.config.LinearProgramming && linearProgramExcludesZero(forms, s.dim) {
			return verdictRejected, nil
		}

		st.ExistenceTests++
		k := krawczyk(x, c, fc, jac, r)
		switch k.status {
		case statusEmpty:
			return verdictRejected, nil
		case statusUnique:
			s.accept(Solution{Box: k.image, Region: x})
			return verdictAccepted, nil
		}

		if narrowed, ok := k.image.Intersect(x); ok {
			if k.image.MaxWidth() <= 1.5*x.MaxWidth() || atResolution(x) {
				if v := s.verifyAround(k.image); v != verdictUnknown {
					return v, nil
				}
			}
			if shrinkage(x, narrowed) >= s.config.ShrinkFactor {
				return verdictRetry, []Box{narrowed}
			}
		}
		b, m = precondition(r, fc), preconditionMatrix(r, jac)
	}

	if s.config.Trim {
		pieces := trim(x, c, b, m, s.config.SplitOnTrim)
		switch {
		case len(pieces) == 0:
			return verdictRejected, nil
		case len(pieces) == 2:
			return verdictSplit, pieces
		case shrinkage(x, pieces[0]) >= s.config.ShrinkFactor:
			return verdictRetry, pieces
		}
	}
	return verdictUnknown, nil
}

// verifyAround decides a box from an epsilon-inflation of k, which encloses
// every root of that box. A unique root outside the initial boxes proves
// the box holds none, since it lies inside them.
func (s *rootSolver) verifyAround(k Box) verdict {
	switch sol, found := s.verifyNearby(k); found {
	case statusEmpty:
		return verdictRejected
	case statusUnique:
		if !s.overlapsSeeds(sol.Box) {
			return verdictRejected
		}
		s.accept(sol)
		return verdictAccepted
	}
	return verdictUnknown
}

// verifyNearby tries to prove that a root lies in an epsilon-inflation of
// k, which encloses every root of the box k was computed from. It returns
// statusEmpty when the inflated box provably holds no root.
func (s *rootSolver) verifyNearby(k Box) (Solution, status) {
	y := k
	for i := 0; i < s.config.InflationSteps; i++ {
		y = inflate(y)
		s.result.Stats.Inflations++

		res, err := s.contractAt(y)
		if err != nil || !res.image.Valid() {
			return Solution{}, statusUnknown
		}
		switch res.status {
		case statusEmpty:
			return Solution{}, statusEmpty
		case statusUnique:
			return Solution{Box: res.image, Region: y}, statusUnique
		}
		y = res.image.Hull(k)
	}
	return Solution{}, statusUnknown
}

// contractAt applies the Krawczyk operator to y exactly as process does, so
// a box it verifies is verified again when fed back as an initial box.
func (s *rootSolver) contractAt(y Box) (contraction, error) {
	forms, err := s.sys.evalAffine(y, s.dim)
	if err != nil {
		return contraction{}, err
	}
	jets, err := s.sys.evalJet(y, s.dim)
	if err != nil {
		return contraction{}, err
	}
	jac := jacobian(jets, s.dim)
	c := y.Mid()
	fc, err := s.sys.evalPoint(c, s.dim)
	if err != nil {
		return contraction{}, err
	}
	r, err := preconditioner(forms, y, jac, s.config.MaxCondition)
	if err != nil {
		return contraction{}, err
	}
	return krawczyk(y, c, fc, jac, r), nil
}

// tighten intersects b with its Krawczyk image. b must contain a root.
func (s *rootSolver) tighten(b Box) (Box, bool) {
	res, err := s.contractAt(b)
	if err != nil || !res.image.Valid() {
		return b, false
	}
	next, ok := res.image.Intersect(b)
	if !ok {
		return b, false
	}
	return next, true
}

// refine contracts a verified root while its box keeps passing the
// Krawczyk test and shrinking. It returns the last box that passed, or b
// itself when b does not pass, and the number of passes.
func (s *rootSolver) refine(b Box) (Box, int) {
	passed, n := b, 0
	for n < s.config.MaxRefinements {
		res, err := s.contractAt(b)
		if err != nil || res.status != statusUnique {
			break
		}
		passed = b
		n++
		next, ok := res.image.Intersect(b)
		if !ok || shrinkage(b, next) < s.config.ShrinkFactor {
			break
		}
		b = next
	}
	return passed, n
}

func (s *rootSolver) accept(sol Solution) {
	sol.Box, sol.Refinements = s.refine(sol.Box)
	sol.Boundary = !s.insideSeeds(sol.Box)
	s.resolve(sol)
}

func (s *rootSolver) insideSeeds(b Box) bool {
	for _, seed := range s.seeds {
		if b.Subset(seed) {
			return true
		}
	}
	return false
}

func (s *rootSolver) overlapsSeeds(b Box) bool {
	for _, seed := range s.seeds {
		if b.Overlaps(seed) {
			return true
		}
	}
	return false
}

func (s *rootSolver) report(x Box) {
	st := s.result.Stats
	if s.config.Verbosity > 1 {
		s.log.WithFields(logrus.Fields{
			"iteration": st.Iterations,
			"pending":   s.queue.len(),
			"box":       x.String(),
		}).Info("processing box")
	}
	if s.config.ProgressChan != nil {
		sendProgress(s.config.ProgressChan, ProgressUpdate{
			Phase:            "AllSolutions",
			CurrentIteration: st.Iterations,
			Pending:          s.queue.len(),
			Solutions:        s.archive.Len(),
			CurrentBox:       x.Clone(),
			CurrentBest:      math.Inf(1),
		})
	}
}

// checkSeeds validates the initial boxes of a search and returns their
// dimension.
func checkSeeds(seeds []Box) (int, error) {
	if len(seeds) == 0 {
		return 0, fmt.Errorf("no initial box: %w", ErrInvalidBox)
	}
	n := len(seeds[0])
	for i, b := range seeds {
		if len(b) != n || !finiteBox(b) {
			return 0, fmt.Errorf("initial box %d %v: %w", i, b, ErrInvalidBox)
		}
	}
	return n, nil
}
