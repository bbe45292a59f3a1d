package spectrum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Clip caps every value of g at ceiling and returns the result as a new
// grid. A ceiling equal to Disabled returns g unchanged.
func Clip(g *mat.Dense, ceiling float64) *mat.Dense {
	if ceiling == Disabled {
		return g
	}

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Min(v, ceiling)
	}, g)
	return &out
}
