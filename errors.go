package vsolve

import "errors"

//////
// Const, vars, types.
//////

var (
	// ErrDomain is returned when the function is undefined on part of a box,
	// e.g. log of an interval reaching below zero. It is never taken as proof
	// that the box holds no root: the box is subdivided instead.
	ErrDomain = errors.New("vsolve: function undefined on part of the box")

	// ErrSingular is returned when the linear bound of the system can not be
	// inverted with acceptable conditioning.
	ErrSingular = errors.New("vsolve: linear bound is singular")

	// ErrDegenerate marks a box that can not be bisected because its midpoint
	// rounds onto an endpoint. Such a box may contain a multiple root.
	ErrDegenerate = errors.New("vsolve: too small to subdivide, possible multiple root")

	// ErrDimension is returned when the number of function outputs does not
	// match what the search needs.
	ErrDimension = errors.New("vsolve: dimension mismatch")

	// ErrInvalidBox is returned for empty, inverted or non-finite boxes.
	ErrInvalidBox = errors.New("vsolve: invalid box")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("vsolve: invalid config")

	// ErrNilFunction is returned when a System lacks a representation.
	ErrNilFunction = errors.New("vsolve: system is missing a representation")
)
