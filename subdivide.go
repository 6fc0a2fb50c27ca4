package vsolve

import (
	"fmt"

	"github.com/thalesfsp/vsolve/interval"
)

// resolutionUlps is the width, in ulps of the coordinate magnitude, below
// which rounding dominates the Krawczyk image of a box.
const resolutionUlps = 64

// bisect cuts b at the midpoint of its widest coordinate. It fails with
// ErrDegenerate when that coordinate is narrower than minWidth or when its
// midpoint rounds onto an endpoint, i.e. floating-point resolution is
// exhausted.
func bisect(b Box, minWidth float64) (Box, Box, error) {
	j := b.Widest()
	x := b[j]
	if x.Width() < minWidth {
		return nil, nil, fmt.Errorf("bisect %v: width %g below %g: %w", b, x.Width(), minWidth, ErrDegenerate)
	}
	m := x.Mid()
	if m <= x.Lo || m >= x.Hi {
		return nil, nil, fmt.Errorf("bisect %v: %w", b, ErrDegenerate)
	}
	left, right := b.Split(j, m)
	return left, right, nil
}

// atResolution reports whether every coordinate of b is at most
// resolutionUlps ulps wide.
func atResolution(b Box) bool {
	for _, x := range b {
		if x.Width() > resolutionUlps*interval.Ulp(x.Mag()) {
			return false
		}
	}
	return true
}

// worklist is a FIFO queue of boxes.
type worklist struct {
	items []Box
	head  int
}

func (w *worklist) push(boxes ...Box) {
	w.items = append(w.items, boxes...)
}

func (w *worklist) pop() (Box, bool) {
	if w.head == len(w.items) {
		return nil, false
	}
	b := w.items[w.head]
	w.items[w.head] = nil
	w.head++
	if w.head > 1024 && 2*w.head > len(w.items) {
		w.items = append([]Box(nil), w.items[w.head:]...)
		w.head = 0
	}
	return b, true
}

func (w *worklist) len() int { return len(w.items) - w.head }

// drain empties the list and returns what was pending.
func (w *worklist) drain() []Box {
	rest := append([]Box(nil), w.items[w.head:]...)
	w.items, w.head = nil, 0
	return rest
}
