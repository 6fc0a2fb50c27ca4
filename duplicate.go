package vsolve

import "github.com/sirupsen/logrus"

// MergeOutcome is the verdict on two solutions whose regions overlap.
type MergeOutcome int

const (
	// Merged means both solutions enclose the same root.
	Merged MergeOutcome = iota

	// DistinctRoots means the solutions enclose different roots.
	DistinctRoots

	// Undecided means refinement did not separate or merge the solutions
	// within MaxMergeIterations. Both are kept and reported.
	Undecided
)

func (o MergeOutcome) String() string {
	switch o {
	case Merged:
		return "merged"
	case DistinctRoots:
		return "distinct"
	case Undecided:
		return "undecided"
	}
	return "unknown"
}

// resolve stores cand unless a stored solution encloses the same root, in
// which case the two are merged. Pairs left undecided are reported once
// cand is stored.
func (s *rootSolver) resolve(cand Solution) {
	var undecided []Solution
	for _, i := range s.archive.Overlapping(cand.Region) {
		old := s.archive.At(i)
		outcome := s.compare(&cand, &old)
		s.archive.Set(i, old)

		switch outcome {
		case Merged:
			s.result.Stats.Merged++
			if s.config.Verbosity > 1 {
				s.log.WithField("box", old.Box.String()).Info("duplicate root merged")
			}
			return
		case Undecided:
			undecided = append(undecided, old)
		}
	}

	s.archive.Update(cand)
	if s.config.Verbosity > 0 {
		s.log.WithFields(logrus.Fields{
			"box":      cand.Box.String(),
			"boundary": cand.Boundary,
		}).Info("root found")
	}

	for _, old := range undecided {
		s.result.Ambiguous = append(s.result.Ambiguous, Ambiguity{
			First:  old.Box.Clone(),
			Second: cand.Box.Clone(),
		})
		if s.config.Verbosity > 0 {
			s.log.WithFields(logrus.Fields{
				"first":  old.Box.String(),
				"second": cand.Box.String(),
			}).Warn("could not decide whether two solutions are the same root")
		}
	}
}

// compare decides whether cand and old enclose the same root. A box that
// lies in the other solution's region shares its unique root; disjoint boxes
// hold different roots. Otherwise both boxes are tightened and compared
// again. Both solutions may be updated in place.
func (s *rootSolver) compare(cand, old *Solution) MergeOutcome {
	for i := 0; ; i++ {
		if cand.Box.Subset(old.Region) || old.Box.Subset(cand.Region) {
			s.merge(cand, old)
			return Merged
		}
		if !cand.Box.Overlaps(old.Box) {
			return DistinctRoots
		}
		if i >= s.config.MaxMergeIterations {
			return Undecided
		}

		nc, okc := s.tighten(cand.Box)
		no, oko := s.tighten(old.Box)
		if (!okc || nc.Equal(cand.Box)) && (!oko || no.Equal(old.Box)) {
			return Undecided
		}
		if !nc.Equal(cand.Box) {
			cand.Box, cand.Refinements = nc, 0
		}
		if !no.Equal(old.Box) {
			old.Box, old.Refinements = no, 0
		}
	}
}

// merge stores in old the intersection of both boxes, tightened while it
// passes the Krawczyk test. When the intersection fails the test, old keeps
// whichever of the two boxes is known to pass it.
func (s *rootSolver) merge(cand, old *Solution) {
	merged, ok := cand.Box.Intersect(old.Box)
	if !ok {
		return
	}
	b, n := s.refine(merged)
	switch {
	case n > 0:
		old.Box, old.Refinements = b, n
	case old.Refinements == 0 && cand.Refinements > 0:
		old.Box, old.Region, old.Refinements = cand.Box.Clone(), cand.Region.Clone(), cand.Refinements
	case old.Refinements == 0:
		old.Box = merged
	}
	old.Boundary = !s.insideSeeds(old.Box)
}
