package spectrum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MapIndices converts the display extent into index bounds of a grid with
// the given shape whose index space spans the data extent. Each bound is
//
//	int((value - min) / (max - min) * axis_length)
//
// truncated toward zero. With logOmega the ω values are replaced by their
// natural logarithms first. No range checking happens here; see
// Bounds.Validate.
func MapIndices(display, data Extent, rows, cols int, logOmega bool) Bounds {
	wLo, wHi := display.OmegaMin, display.OmegaMax
	dLo, dHi := data.OmegaMin, data.OmegaMax
	if logOmega {
		wLo, wHi = math.Log(wLo), math.Log(wHi)
		dLo, dHi = math.Log(dLo), math.Log(dHi)
	}

	return Bounds{
		OmegaLo: toIndex(wLo, dLo, dHi, cols),
		OmegaHi: toIndex(wHi, dLo, dHi, cols),
		ThetaLo: toIndex(display.ThetaMin, data.ThetaMin, data.ThetaMax, rows),
		ThetaHi: toIndex(display.ThetaMax, data.ThetaMin, data.ThetaMax, rows),
	}
}

func toIndex(v, lo, hi float64, n int) int {
	f := (v - lo) / (hi - lo) * float64(n)
	switch {
	case math.IsNaN(f):
		return -1
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// Validate checks that b selects a non-empty region inside a rows×cols
// grid. A display extent reaching outside the data extent fails here with
// a *RangeError instead of being clamped.
func (b Bounds) Validate(rows, cols int) error {
	if err := checkRange("omega", b.OmegaLo, b.OmegaHi, cols); err != nil {
		return err
	}
	return checkRange("theta", b.ThetaLo, b.ThetaHi, rows)
}

// Crop returns a copy of g[ThetaLo:ThetaHi, OmegaLo:OmegaHi]. b must be valid
// for g.
func Crop(g *mat.Dense, b Bounds) *mat.Dense {
	return mat.DenseCopyOf(g.Slice(b.ThetaLo, b.ThetaHi, b.OmegaLo, b.OmegaHi))
}
