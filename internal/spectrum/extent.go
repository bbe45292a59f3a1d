// Package spectrum loads radiation spectrum grids and reduces them for
// plotting: angle range selection, extent-to-index mapping, cropping,
// clipping and Gaussian smoothing.
//
// A grid has one row per observation angle θ and one column per frequency ω.
// Coordinates are never stored; they follow from an Extent and the grid shape.
package spectrum

import (
	"errors"
	"fmt"
)

// Disabled marks an unset ceiling, smoothing sigma or split bound.
const Disabled = -1

var (
	// ErrNegativeOmega is returned when the frequency bounds are invalid for
	// the chosen axis scale: log axes need ω > 0, linear axes ω >= 0.
	ErrNegativeOmega = errors.New("invalid omega bound")

	// ErrDegenerateExtent is returned for an extent whose min equals its max.
	ErrDegenerateExtent = errors.New("degenerate extent")
)

// Extent is the physical range spanned by a grid's index space.
type Extent struct {
	OmegaMin, OmegaMax float64
	ThetaMin, ThetaMax float64
}

// ExtentFromSlice builds an Extent from the CLI order
// omega_min, omega_max, theta_min, theta_max.
func ExtentFromSlice(v []float64) (Extent, error) {
	if len(v) != 4 {
		return Extent{}, fmt.Errorf("extent needs 4 values (omega_min omega_max theta_min theta_max), got %d", len(v))
	}
	return Extent{OmegaMin: v[0], OmegaMax: v[1], ThetaMin: v[2], ThetaMax: v[3]}, nil
}

func (e Extent) String() string {
	return fmt.Sprintf("ω [%g, %g] θ [%g, %g]", e.OmegaMin, e.OmegaMax, e.ThetaMin, e.ThetaMax)
}

// Bounds are half-open index bounds into a grid: rows [ThetaLo, ThetaHi),
// columns [OmegaLo, OmegaHi).
type Bounds struct {
	OmegaLo, OmegaHi int
	ThetaLo, ThetaHi int
}

// Rows returns the number of rows selected by b.
func (b Bounds) Rows() int { return b.ThetaHi - b.ThetaLo }

// Cols returns the number of columns selected by b.
func (b Bounds) Cols() int { return b.OmegaHi - b.OmegaLo }

// RangeError reports an index range that does not fit inside a grid axis.
type RangeError struct {
	Axis   string
	Lo, Hi int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s range [%d, %d) does not fit axis of length %d", e.Axis, e.Lo, e.Hi, e.Len)
}

func checkRange(axis string, lo, hi, n int) error {
	if lo < 0 || hi > n || lo >= hi {
		return &RangeError{Axis: axis, Lo: lo, Hi: hi, Len: n}
	}
	return nil
}
