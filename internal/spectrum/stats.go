package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Stats summarises a grid for the colour scale and the text summary.
type Stats struct {
	Min, Max float64
	// MinPositive is the smallest value > 0, or NaN when there is none.
	MinPositive float64
	// Profile is the spectrum integrated over θ: one sum per ω column.
	Profile []float64
}

// Summarize computes Stats for g.
func Summarize(g *mat.Dense) Stats {
	rows, cols := g.Dims()
	s := Stats{
		Min:         mat.Min(g),
		Max:         mat.Max(g),
		MinPositive: math.NaN(),
		Profile:     make([]float64, cols),
	}

	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, g)
		floats.Add(s.Profile, row)
		for _, v := range row {
			if v > 0 && (math.IsNaN(s.MinPositive) || v < s.MinPositive) {
				s.MinPositive = v
			}
		}
	}
	return s
}
