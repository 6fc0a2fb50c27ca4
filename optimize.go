package vsolve

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/thalesfsp/vsolve/interval"
)

// minimizer runs one global minimization of a scalar function.
type minimizer struct {
	config Config
	sys    System
	seed   Box
	log    logrus.FieldLogger
	queue  worklist

	// best is the smallest rigorous upper bound of f seen at a point, and
	// bestPoint that point.
	best      float64
	bestPoint []float64

	accepted []Box
	result   OptimumResult
}

func newMinimizer(config Config, sys System, seed Box) *minimizer {
	return &minimizer{
		config: config,
		sys:    sys,
		seed:   seed.Clone(),
		log:    logger(config).WithField("phase", "Optimization"),
		best:   math.Inf(1),
	}
}

func (s *minimizer) run() *OptimumResult {
	s.observe(s.seed.Mid())
	if s.config.LocalSearch {
		if p, ok := localSearch(s.sys, s.seed, s.config.LocalSearchEvaluations); ok {
			s.observe(p)
		}
	}

	s.queue.push(s.seed.Clone())
	for s.queue.len() > 0 {
		if s.config.MaxSubdivisions > 0 && s.result.Stats.Subdivisions >= s.config.MaxSubdivisions {
			s.result.Undecided = s.queue.drain()
			if s.config.Verbosity > 0 {
				s.log.WithField("pending", len(s.result.Undecided)).Warn("subdivision limit reached")
			}
			break
		}
		x, _ := s.queue.pop()
		s.visit(x)
	}

	s.finish()
	return &s.result
}

func (s *minimizer) visit(x Box) {
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
			s.accept(x)
			return
		case verdictRetry:
			x = next
			if retry < s.config.MaxRetries {
				st.Retries++
				continue
			}
		}

		st.Unknown++
		left, right, err := bisect(x, s.config.MinWidth)
		if err != nil {
			s.result.Degenerate = append(s.result.Degenerate, x)
			if s.config.Verbosity > 0 {
				s.log.WithField("box", x.String()).Warn(ErrDegenerate.Error())
			}
			s.accept(x)
			return
		}
		st.Subdivisions++
		s.queue.push(left, right)
		return
	}
}

// process discards x when its lower bound exceeds the best known value,
// collapses it onto a face when f is monotone in a coordinate, and accepts
// it once it is narrower than WidthLimit.
func (s *minimizer) process(x Box) (verdict, Box) {
	st := &s.result.Stats
	st.NonExistenceTests++

	fx, err := s.sys.evalInterval(x, 1)
	if err == nil && fx[0].Lo > s.best {
		return verdictRejected, nil
	}

	forms, err := s.sys.evalAffine(x, 1)
	if err == nil {
		if forms[0].Range().Lo > s.best {
			return verdictRejected, nil
		}
		for _, sample := range s.config.Samplers {
			s.observe(clamp(x, sample(x, forms[0])))
		}
	} else {
		s.observe(x.Mid())
	}
	if fx != nil && fx[0].Lo > s.best {
		return verdictRejected, nil
	}

	jets, err := s.sys.evalJet(x, 1)
	if err == nil {
		st.ExistenceTests++
		if s.meanValueBound(x, jets[0].D).Lo > s.best {
			return verdictRejected, nil
		}

		collapsed, changed := x.Clone(), false
		for j := range x {
			g := jets[0].Grad(j)
			switch {
			case g.Lo > 0:
				if x[j].Lo != s.seed[j].Lo {
					return verdictRejected, nil
				}
				collapsed[j] = interval.Point(x[j].Lo)
			case g.Hi < 0:
				if x[j].Hi != s.seed[j].Hi {
					return verdictRejected, nil
				}
				collapsed[j] = interval.Point(x[j].Hi)
			default:
				continue
			}
			changed = changed || !x[j].IsPoint()
		}
		if changed {
			return verdictRetry, collapsed
		}
	}

	if x.MaxWidth() < s.config.WidthLimit {
		return verdictAccepted, nil
	}
	return verdictUnknown, nil
}

// meanValueBound encloses f over x by f(c) + ∇f(X)·(X - c).
func (s *minimizer) meanValueBound(x Box, grad []interval.Interval) interval.Interval {
	c := x.Mid()
	fc, err := s.sys.evalPoint(c, 1)
	if err != nil || len(grad) != len(x) {
		return interval.Entire()
	}
	v := fc[0]
	for j, g := range grad {
		v = v.Add(g.Mul(x[j].Sub(interval.Point(c[j]))))
	}
	if !v.Valid() {
		return interval.Entire()
	}
	return v
}

// observe evaluates f rigorously at p and updates the best known value.
func (s *minimizer) observe(p []float64) {
	v, err := s.sys.evalPoint(p, 1)
	if err != nil {
		return
	}
	if v[0].Hi < s.best {
		s.best = v[0].Hi
		s.bestPoint = append(s.bestPoint[:0], p...)
	}
}

// accept stores a terminal box, merging it with the accepted boxes it
// overlaps when Unify is set.
func (s *minimizer) accept(b Box) {
	if s.config.Unify {
		for merged := true; merged; {
			merged = false
			for i, a := range s.accepted {
				if a.Overlaps(b) {
					b = b.Hull(a)
					s.accepted = append(s.accepted[:i], s.accepted[i+1:]...)
					merged = true
					break
				}
			}
		}
	}
	s.accepted = append(s.accepted, b)
}

// finish drops the accepted boxes the final best value rules out and
// encloses the minimum.
func (s *minimizer) finish() {
	lo := math.Inf(1)
	lower := func(b Box) float64 {
		fx, err := s.sys.evalInterval(b, 1)
		if err != nil {
			return math.Inf(-1)
		}
		return fx[0].Lo
	}

	for _, b := range s.accepted {
		l := lower(b)
		if l > s.best {
			continue
		}
		s.result.Boxes = append(s.result.Boxes, b)
		lo = math.Min(lo, l)
	}
	for _, b := range s.result.Undecided {
		lo = math.Min(lo, lower(b))
	}

	hi := s.best
	if math.IsInf(lo, 1) {
		lo = hi
	}
	s.result.Value = interval.New(math.Min(lo, hi), hi)
	s.result.Best = s.bestPoint

	if s.config.Verbosity > 0 {
		s.log.WithFields(statsFields(s.result.Stats)).WithFields(logrus.Fields{
			"value": s.result.Value.String(),
			"boxes": len(s.result.Boxes),
		}).Info("optimization finished")
	}
}

func (s *minimizer) report(x Box) {
	st := s.result.Stats
	if s.config.Verbosity > 1 {
		s.log.WithFields(logrus.Fields{
			"iteration": st.Iterations,
			"pending":   s.queue.len(),
			"best":      s.best,
			"box":       x.String(),
		}).Info("processing box")
	}
	if s.config.ProgressChan != nil {
		sendProgress(s.config.ProgressChan, ProgressUpdate{
			Phase:            "Optimization",
			CurrentIteration: st.Iterations,
			Pending:          s.queue.len(),
			Solutions:        len(s.accepted),
			CurrentBox:       x.Clone(),
			CurrentBest:      s.best,
		})
	}
}
