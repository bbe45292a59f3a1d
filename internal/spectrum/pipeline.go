package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Options controls how one grid is reduced before plotting.
type Options struct {
	Data    Extent // physical range of the full grid
	Display Extent // range to show; must lie inside Data

	LogOmega bool
	Split    AngleRange

	// DataMax caps values before smoothing. Disabled turns it off.
	DataMax float64

	// SigmaOmega and SigmaTheta are the Gaussian widths in cells. Smoothing
	// runs only when both are positive.
	SigmaOmega, SigmaTheta float64
	Method                 Method
}

// DefaultOptions returns options for an unsmoothed, unclipped plot of the
// default data extent.
func DefaultOptions() Options {
	e := Extent{OmegaMin: 0, OmegaMax: 1, ThetaMin: 0, ThetaMax: 90}
	return Options{
		Data:       e,
		Display:    e,
		Split:      NoSplit,
		DataMax:    Disabled,
		SigmaOmega: Disabled,
		SigmaTheta: Disabled,
		Method:     Separable,
	}
}

// Validate checks the preconditions that can be decided before reading
// any file.
func (o Options) Validate() error {
	bounds := []float64{o.Data.OmegaMin, o.Data.OmegaMax, o.Display.OmegaMin, o.Display.OmegaMax}
	for _, w := range bounds {
		if o.LogOmega && w <= 0 {
			return fmt.Errorf("%w: logarithmic omega axis needs all bounds > 0, got data %g..%g display %g..%g",
				ErrNegativeOmega, bounds[0], bounds[1], bounds[2], bounds[3])
		}
		if !o.LogOmega && w < 0 {
			return fmt.Errorf("%w: omega bounds must be >= 0, got data %g..%g display %g..%g",
				ErrNegativeOmega, bounds[0], bounds[1], bounds[2], bounds[3])
		}
	}

	for _, e := range []struct {
		name string
		ext  Extent
	}{{"data", o.Data}, {"display", o.Display}} {
		if e.ext.OmegaMin == e.ext.OmegaMax || e.ext.ThetaMin == e.ext.ThetaMax {
			return fmt.Errorf("%w: %s extent %s", ErrDegenerateExtent, e.name, e.ext)
		}
	}

	if o.Split.Enabled() && (o.Split.First < 0 || o.Split.Last <= o.Split.First) {
		return fmt.Errorf("invalid split %d..%d", o.Split.First, o.Split.Last)
	}

	switch o.Method {
	case Separable, Spectral, "":
	default:
		return fmt.Errorf("unknown smoothing method %q", o.Method)
	}

	return nil
}

// Smoothing reports whether Process will blur the grid.
func (o Options) Smoothing() bool {
	return o.SigmaOmega > 0 && o.SigmaTheta > 0
}

// Result is a grid ready for plotting.
type Result struct {
	Grid    *mat.Dense
	Bounds  Bounds // index bounds of Grid within the selected rows
	Display Extent
}

// Process runs select rows, map indices, crop, clip and smooth on g. g is
// not modified.
func Process(g *mat.Dense, o Options) (*Result, error) {
	sel, err := SelectRows(g, o.Split)
	if err != nil {
		return nil, err
	}

	rows, cols := sel.Dims()
	b := MapIndices(o.Display, o.Data, rows, cols, o.LogOmega)
	if err := b.Validate(rows, cols); err != nil {
		return nil, fmt.Errorf("display extent %s: %w", o.Display, err)
	}

	out := Clip(Crop(sel, b), o.DataMax)

	if o.Smoothing() {
		hx, hy := HalfWidth(o.SigmaOmega), HalfWidth(o.SigmaTheta)
		if o.Method == Spectral {
			out = SmoothSpectral(out, o.SigmaOmega, hx, o.SigmaTheta, hy)
		} else {
			out = Smooth2D(out, o.SigmaOmega, hx, o.SigmaTheta, hy)
		}
	}

	return &Result{Grid: out, Bounds: b, Display: o.Display}, nil
}
