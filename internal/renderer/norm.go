package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/linuxmatters/radplot/internal/spectrum"
)

// ErrNoPositiveValues is returned for a logarithmic colour scale over a grid
// without any value > 0.
var ErrNoPositiveValues = errors.New("logarithmic colour scale needs positive values")

// Norm maps data values to [0, 1] for colormap lookup.
type Norm struct {
	Min, Max float64
	Log      bool
}

// NewNorm autoscales a norm for a grid summarised by st. vmax > 0
// overrides the colour maximum; otherwise the data maximum is used. A log
// norm starts at the smallest positive value.
func NewNorm(st spectrum.Stats, vmax float64, log bool) (Norm, error) {
	n := Norm{Min: st.Min, Max: st.Max, Log: log}
	if vmax > 0 {
		n.Max = vmax
	}

	if log {
		if math.IsNaN(st.MinPositive) {
			return Norm{}, ErrNoPositiveValues
		}
		n.Min = st.MinPositive
		if n.Max <= 0 {
			return Norm{}, ErrNoPositiveValues
		}
	}

	if n.Min > n.Max {
		return Norm{}, fmt.Errorf("colour minimum %g exceeds maximum %g", n.Min, n.Max)
	}
	return n, nil
}

// Normalize returns the position of v on the colour scale. Values outside
// [Min, Max] fall outside [0, 1]. It returns NaN for masked values: NaN
// input, or v <= 0 on a log scale.
func (n Norm) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	lo, hi := n.Min, n.Max
	if n.Log {
		if v <= 0 {
			return math.NaN()
		}
		v, lo, hi = math.Log(v), math.Log(lo), math.Log(hi)
	}
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// Value is the inverse of Normalize for t in [0, 1].
func (n Norm) Value(t float64) float64 {
	if n.Log {
		return math.Exp(math.Log(n.Min) + t*(math.Log(n.Max)-math.Log(n.Min)))
	}
	return n.Min + t*(n.Max-n.Min)
}
