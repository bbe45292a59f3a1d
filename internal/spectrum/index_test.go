package spectrum

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMapIndices_Identity(t *testing.T) {
	testCases := []struct {
		name       string
		ext        Extent
		rows, cols int
		logOmega   bool
	}{
		{name: "default extent", ext: Extent{0, 1, 0, 90}, rows: 10, cols: 10},
		{name: "wide grid", ext: Extent{0, 40, -45, 45}, rows: 7, cols: 513},
		{name: "log omega", ext: Extent{0.1, 1000, 0, 180}, rows: 12, cols: 300, logOmega: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapIndices(tc.ext, tc.ext, tc.rows, tc.cols, tc.logOmega)
			want := Bounds{OmegaLo: 0, OmegaHi: tc.cols, ThetaLo: 0, ThetaHi: tc.rows}
			if got != want {
				t.Errorf("MapIndices() = %+v, want %+v", got, want)
			}
			if err := got.Validate(tc.rows, tc.cols); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestMapIndices_HalfOmega(t *testing.T) {
	got := MapIndices(Extent{0.5, 1, 0, 90}, Extent{0, 1, 0, 90}, 10, 10, false)
	want := Bounds{OmegaLo: 5, OmegaHi: 10, ThetaLo: 0, ThetaHi: 10}
	if got != want {
		t.Errorf("MapIndices() = %+v, want %+v", got, want)
	}
}

func TestMapIndices_Truncates(t *testing.T) {
	// 0.29 * 10 = 2.9 truncates to 2; 44.9/90*10 = 4.98 truncates to 4.
	got := MapIndices(Extent{0.29, 1, 0, 44.9}, Extent{0, 1, 0, 90}, 10, 10, false)
	if got.OmegaLo != 2 || got.ThetaHi != 4 {
		t.Errorf("MapIndices() = %+v, want OmegaLo 2 and ThetaHi 4", got)
	}
}

func TestMapIndices_LogMonotonic(t *testing.T) {
	data := Extent{0.01, 100, 0, 90}
	prev := -1
	for w := 0.02; w <= 100; w *= 1.37 {
		b := MapIndices(Extent{0.01, w, 0, 90}, data, 20, 400, true)
		if b.OmegaHi < prev {
			t.Fatalf("OmegaHi decreased from %d to %d at omega_max %g", prev, b.OmegaHi, w)
		}
		prev = b.OmegaHi
	}
}

func TestMapIndices_LogUsesLogSpacing(t *testing.T) {
	// ln 11 / ln 100 = 0.52; a linear mapping would give 10.
	b := MapIndices(Extent{11, 100, 0, 90}, Extent{1, 100, 0, 90}, 4, 100, true)
	if b.OmegaLo != 52 {
		t.Errorf("OmegaLo = %d, want 52", b.OmegaLo)
	}
}

func TestBoundsValidate_OutOfRange(t *testing.T) {
	data := Extent{0, 1, 0, 90}
	testCases := []struct {
		name    string
		display Extent
		axis    string
	}{
		{name: "omega below data", display: Extent{-0.5, 1, 0, 90}, axis: "omega"},
		{name: "omega above data", display: Extent{0, 1.5, 0, 90}, axis: "omega"},
		{name: "theta above data", display: Extent{0, 1, 0, 120}, axis: "theta"},
		{name: "reversed theta", display: Extent{0, 1, 60, 30}, axis: "theta"},
		{name: "empty omega", display: Extent{0.51, 0.52, 0, 90}, axis: "omega"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := MapIndices(tc.display, data, 10, 10, false).Validate(10, 10)
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("Expected *RangeError, got %v", err)
			}
			if re.Axis != tc.axis {
				t.Errorf("RangeError axis = %q, want %q", re.Axis, tc.axis)
			}
		})
	}
}

func TestCrop(t *testing.T) {
	g := mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})

	c := Crop(g, Bounds{OmegaLo: 1, OmegaHi: 3, ThetaLo: 1, ThetaHi: 3})
	want := mat.NewDense(2, 2, []float64{5, 6, 9, 10})
	if !mat.Equal(c, want) {
		t.Errorf("Crop() = %v, want %v", mat.Formatted(c), mat.Formatted(want))
	}

	c.Set(0, 0, -1)
	if g.At(1, 1) != 5 {
		t.Error("Crop() result shares storage with the input")
	}
}

func TestSelectRows(t *testing.T) {
	g := mat.NewDense(4, 2, []float64{0, 0, 1, 1, 2, 2, 3, 3})

	same, err := SelectRows(g, NoSplit)
	if err != nil || same != g {
		t.Errorf("SelectRows(NoSplit) = %p, %v; want input unchanged", same, err)
	}

	sel, err := SelectRows(g, AngleRange{First: 1, Last: 3})
	if err != nil {
		t.Fatalf("SelectRows() error: %v", err)
	}
	if r, _ := sel.Dims(); r != 2 || sel.At(0, 0) != 1 || sel.At(1, 1) != 2 {
		t.Errorf("SelectRows(1, 3) = %v", mat.Formatted(sel))
	}

	if _, err := SelectRows(g, AngleRange{First: 2, Last: 9}); err == nil {
		t.Error("SelectRows() accepted a range past the last row")
	}
}

func TestExtentFromSlice(t *testing.T) {
	e, err := ExtentFromSlice([]float64{0.5, 2, -10, 10})
	if err != nil {
		t.Fatalf("ExtentFromSlice() error: %v", err)
	}
	if e != (Extent{OmegaMin: 0.5, OmegaMax: 2, ThetaMin: -10, ThetaMax: 10}) {
		t.Errorf("ExtentFromSlice() = %+v", e)
	}
	if _, err := ExtentFromSlice([]float64{1, 2, 3}); err == nil {
		t.Error("ExtentFromSlice() accepted 3 values")
	}
	if _, err := AngleRangeFromSlice([]int{1}); err == nil {
		t.Error("AngleRangeFromSlice() accepted 1 value")
	}
}
