package vsolve

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

//////
// Helper functions.
//////

// shrinkage returns the mean relative width reduction from before to after,
// 0 when nothing shrank and 1 when every coordinate collapsed to a point.
// Coordinates that already had zero width are ignored.
//
// Parameters:
// - before: The box before contraction
// - after: The contracted box, contained in before
//
// Returns:
// - float64: 1 - mean(width(after)/width(before))
func shrinkage(before, after Box) float64 {
	wa := after.Widths()
	ratios := make([]float64, 0, len(before))
	for j, w := range before.Widths() {
		if w <= 0 || math.IsInf(w, 0) {
			continue
		}
		ratios = append(ratios, math.Min(wa[j]/w, 1))
	}
	if len(ratios) == 0 {
		return 0
	}
	return 1 - stat.Mean(ratios, nil)
}

// finiteBox reports whether b is a non-empty box with finite bounds.
func finiteBox(b Box) bool {
	if !b.Valid() {
		return false
	}
	for _, x := range b {
		if math.IsInf(x.Lo, 0) || math.IsInf(x.Hi, 0) {
			return false
		}
	}
	return true
}

// clamp projects p onto b in place and returns it.
func clamp(b Box, p []float64) []float64 {
	for j := range p {
		if math.IsNaN(p[j]) {
			p[j] = b[j].Mid()
		}
		p[j] = math.Max(b[j].Lo, math.Min(b[j].Hi, p[j]))
	}
	return p
}

// sendProgress delivers update without blocking the search.
func sendProgress(ch chan<- ProgressUpdate, update ProgressUpdate) {
	if ch == nil {
		return
	}

	select {
	case ch <- update:
	default:
		// Skip update if channel is full.
	}
}

// logger returns the configured logger or the logrus standard logger.
func logger(config Config) logrus.FieldLogger {
	if config.Logger != nil {
		return config.Logger
	}
	return logrus.StandardLogger()
}

func statsFields(st Stats) logrus.Fields {
	return logrus.Fields{
		"iterations":   st.Iterations,
		"subdivisions": st.Subdivisions,
		"retries":      st.Retries,
		"inflations":   st.Inflations,
		"existent":     st.Existent,
		"nonexistent":  st.NonExistent,
		"unknown":      st.Unknown,
	}
}
