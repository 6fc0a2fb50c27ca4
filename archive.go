package vsolve

//////
// Const, vars, types.
//////

// archive stores the verified solutions of a search. It is owned by a
// single search and is not safe for concurrent use.
//
// Fields:
// - solutions: accepted solutions, in the order they were found
//
// Memory usage:
// - Grows linearly with the number of distinct roots.
type archive struct {
	// solutions holds the accepted solutions. Every Box is contained in its
	// Region.
	solutions []Solution
}

//////
// Methods.
//////

// Overlapping returns the indices of the stored solutions whose region
// shares a point with region.
//
// Parameters:
// - region: The region of a new candidate solution
//
// Returns:
// - []int: Indices usable with At and Set, in insertion order
//
// Important notes:
//   - Solutions with disjoint regions enclose distinct roots, so only the
//     returned ones need to be compared with the candidate
func (a *archive) Overlapping(region Box) []int {
	var idx []int
	for i, s := range a.solutions {
		if s.Region.Overlaps(region) {
			idx = append(idx, i)
		}
	}

	return idx
}

// At returns a copy of solution i.
func (a *archive) At(i int) Solution {
	return cloneSolution(a.solutions[i])
}

// Set replaces solution i, e.g. after merging it with a duplicate.
func (a *archive) Set(i int, s Solution) {
	a.solutions[i] = cloneSolution(s)
}

// Update adds a new solution to the archive.
//
// Parameters:
// - s: A solution whose duplicate status was resolved by the caller
//
// Important notes:
// - Creates a deep copy of the boxes to prevent external modifications
func (a *archive) Update(s Solution) {
	a.solutions = append(a.solutions, cloneSolution(s))
}

// Solutions returns a copy of the stored solutions.
func (a *archive) Solutions() []Solution {
	out := make([]Solution, len(a.solutions))
	for i, s := range a.solutions {
		out[i] = cloneSolution(s)
	}

	return out
}

// Len returns the number of stored solutions.
func (a *archive) Len() int {
	return len(a.solutions)
}

func cloneSolution(s Solution) Solution {
	s.Box = s.Box.Clone()
	s.Region = s.Region.Clone()
	return s
}

//////
// Factory.
//////

// newArchive creates an empty archive. Create one per search.
func newArchive() *archive {
	return &archive{}
}
