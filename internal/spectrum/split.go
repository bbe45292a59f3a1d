package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AngleRange selects rows [First, Last) of a grid. Either bound set to
// Disabled turns the selection off.
type AngleRange struct {
	First, Last int
}

// NoSplit is the disabled angle range.
var NoSplit = AngleRange{First: Disabled, Last: Disabled}

// AngleRangeFromSlice builds an AngleRange from the CLI pair first, last.
func AngleRangeFromSlice(v []int) (AngleRange, error) {
	if len(v) != 2 {
		return AngleRange{}, fmt.Errorf("split needs 2 values (first last), got %d", len(v))
	}
	return AngleRange{First: v[0], Last: v[1]}, nil
}

// Enabled reports whether the range restricts the rows.
func (a AngleRange) Enabled() bool {
	return a.First != Disabled && a.Last != Disabled
}

// SelectRows returns the rows of g inside a, or g itself when a is disabled.
func SelectRows(g *mat.Dense, a AngleRange) (*mat.Dense, error) {
	if !a.Enabled() {
		return g, nil
	}

	rows, cols := g.Dims()
	if err := checkRange("theta split", a.First, a.Last, rows); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(g.Slice(a.First, a.Last, 0, cols)), nil
}
