package vsolve

import (
	"github.com/thalesfsp/vsolve/affine"
)

//////
// Available samplers for global optimization.
// Each sampler picks a point of a box at which the objective is evaluated
// rigorously; the smallest upper bound seen so far prunes every box whose
// lower bound exceeds it.
//////

// CenterSampler returns the midpoint of the box.
//
// When to use:
// - Always safe, works on any objective
// - Gives the best bound once boxes are small
//
// Example:
//
//	p := CenterSampler(box, form)  // box.Mid()
func CenterSampler(box Box, _ affine.Form) []float64 {
	return box.Mid()
}

// SteepestSampler follows the linear part of the affine form of the objective
// downhill: coordinate j goes to its lower end when the coefficient of εⱼ is
// positive, to its upper end when it is negative, and stays at the midpoint
// otherwise.
//
// How it works:
// - The affine form is f ≈ c + Σ aⱼ·εⱼ over the box
// - Its linear part is minimized at εⱼ = -sign(aⱼ)
//
// When to use:
// - On large boxes, where the minimum is often on a face
// - Together with CenterSampler (the default)
//
// Example:
//
//	config := DefaultOptimizeConfig()
//	config.Samplers = []SamplerFunc{SteepestSampler}
func SteepestSampler(box Box, form affine.Form) []float64 {
	p := box.Mid()
	if !form.Valid() {
		return p
	}
	for j := range p {
		switch a := form.Coef(j); {
		case a > 0:
			p[j] = box[j].Lo
		case a < 0:
			p[j] = box[j].Hi
		}
	}
	return p
}
