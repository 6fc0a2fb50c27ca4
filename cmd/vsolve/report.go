package main

import (
	"github.com/thalesfsp/vsolve"
)

type solutionReport struct {
	Box      [][]float64 `yaml:"box,flow"`
	Boundary bool        `yaml:"boundary,omitempty"`
}

type statsReport struct {
	Iterations   int `yaml:"iterations"`
	Subdivisions int `yaml:"subdivisions"`
	Retries      int `yaml:"retries"`
	Inflations   int `yaml:"inflations"`
	Existent     int `yaml:"existent"`
	NonExistent  int `yaml:"nonexistent"`
	Unknown      int `yaml:"unknown"`
	Merged       int `yaml:"merged"`
}

type rootsReport struct {
	Problem    string           `yaml:"problem"`
	Solutions  []solutionReport `yaml:"solutions"`
	Degenerate [][][]float64    `yaml:"degenerate,omitempty,flow"`
	Undecided  [][][]float64    `yaml:"undecided,omitempty,flow"`
	Ambiguous  [][][][]float64  `yaml:"ambiguous,omitempty,flow"`
	Stats      statsReport      `yaml:"stats"`
}

type optimumReport struct {
	Problem   string        `yaml:"problem"`
	Goal      string        `yaml:"goal"`
	Value     []float64     `yaml:"value,flow"`
	Best      []float64     `yaml:"best,flow"`
	Boxes     [][][]float64 `yaml:"boxes,flow"`
	Undecided [][][]float64 `yaml:"undecided,omitempty,flow"`
	Stats     statsReport   `yaml:"stats"`
}

func boxReport(b vsolve.Box) [][]float64 {
	out := make([][]float64, len(b))
	for i, x := range b {
		out[i] = []float64{x.Lo, x.Hi}
	}
	return out
}

func boxesReport(boxes []vsolve.Box) [][][]float64 {
	out := make([][][]float64, len(boxes))
	for i, b := range boxes {
		out[i] = boxReport(b)
	}
	return out
}

func newStatsReport(st vsolve.Stats) statsReport {
	return statsReport{
		Iterations:   st.Iterations,
		Subdivisions: st.Subdivisions,
		Retries:      st.Retries,
		Inflations:   st.Inflations,
		Existent:     st.Existent,
		NonExistent:  st.NonExistent,
		Unknown:      st.Unknown,
		Merged:       st.Merged,
	}
}

func newRootsReport(name string, res *vsolve.Result) rootsReport {
	r := rootsReport{
		Problem:    name,
		Solutions:  make([]solutionReport, len(res.Solutions)),
		Degenerate: boxesReport(res.Degenerate),
		Undecided:  boxesReport(res.Undecided),
		Stats:      newStatsReport(res.Stats),
	}
	for i, s := range res.Solutions {
		r.Solutions[i] = solutionReport{Box: boxReport(s.Box), Boundary: s.Boundary}
	}
	for _, amb := range res.Ambiguous {
		r.Ambiguous = append(r.Ambiguous, [][][]float64{boxReport(amb.First), boxReport(amb.Second)})
	}
	return r
}

func newOptimumReport(name string, maximize bool, res *vsolve.OptimumResult) optimumReport {
	goal := "minimize"
	if maximize {
		goal = "maximize"
	}
	return optimumReport{
		Problem:   name,
		Goal:      goal,
		Value:     []float64{res.Value.Lo, res.Value.Hi},
		Best:      res.Best,
		Boxes:     boxesReport(res.Boxes),
		Undecided: boxesReport(res.Undecided),
		Stats:     newStatsReport(res.Stats),
	}
}
