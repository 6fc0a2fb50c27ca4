package vsolve_test

import (
	"fmt"
	"sort"

	"github.com/thalesfsp/vsolve"
	"github.com/thalesfsp/vsolve/affine"
	"github.com/thalesfsp/vsolve/interval"
	"github.com/thalesfsp/vsolve/jet"
	"github.com/thalesfsp/vsolve/num"
)

func circle[T num.Scalar[T]](x []T) []T {
	return []T{
		x[0].Sqr().Add(x[1].Sqr()).AddConst(-1),
		x[0].Sub(x[1]),
	}
}

func ExampleAllSolutions() {
	sys := vsolve.NewSystem(circle[num.Real], circle[interval.Interval], circle[affine.Form], circle[jet.Jet])
	box, _ := vsolve.NewBox(
		vsolve.Range[float64]{Min: -10, Max: 10},
		vsolve.Range[float64]{Min: -10, Max: 10},
	)

	config := vsolve.DefaultConfig()
	config.Verbosity = 0

	res, err := vsolve.AllSolutions(config, sys, box)
	if err != nil {
		panic(err)
	}

	boxes := res.Boxes()
	sort.Slice(boxes, func(i, j int) bool { return boxes[i][0].Lo < boxes[j][0].Lo })
	for _, b := range boxes {
		m := b.Mid()
		fmt.Printf("(%.6f, %.6f)\n", m[0], m[1])
	}
	// Output:
	// (-0.707107, -0.707107)
	// (0.707107, 0.707107)
}

func sixHumpCamel[T num.Scalar[T]](x []T) []T {
	x2 := x[0].Sqr()
	t1 := x2.MulConst(-2.1).AddConst(4).Mul(x2).Add(x2.Sqr().Mul(x2).MulConst(1.0 / 3))
	t3 := x[1].Sqr().AddConst(-1).Mul(x[1].Sqr()).MulConst(4)
	return []T{t1.Add(x[0].Mul(x[1])).Add(t3)}
}

func ExampleMinimizeValue() {
	sys := vsolve.NewSystem(sixHumpCamel[num.Real], sixHumpCamel[interval.Interval], sixHumpCamel[affine.Form], sixHumpCamel[jet.Jet])
	box, _ := vsolve.NewBox(vsolve.Range[int]{Min: -3, Max: 3}, vsolve.Range[int]{Min: -2, Max: 2})

	value, err := vsolve.MinimizeValue(vsolve.DefaultOptimizeConfig(), sys, box)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", value.Mid())
	// Output: -1.0316
}
