package spectrum

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestProcess_OnesUnchanged(t *testing.T) {
	g := constGrid(10, 10, 1)

	res, err := Process(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if !mat.Equal(res.Grid, g) {
		t.Errorf("Process() changed an all-ones grid:\n%v", mat.Formatted(res.Grid))
	}
	if st := Summarize(res.Grid); st.Max != 1 {
		t.Errorf("colour maximum = %g, want 1", st.Max)
	}
	if res.Bounds != (Bounds{0, 10, 0, 10}) {
		t.Errorf("Bounds = %+v, want full grid", res.Bounds)
	}
}

func TestProcess_CropHalfOmega(t *testing.T) {
	g := mat.NewDense(10, 10, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			g.Set(i, j, float64(10*i+j))
		}
	}

	o := DefaultOptions()
	o.Display = Extent{0.5, 1, 0, 90}
	res, err := Process(g, o)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	if r, c := res.Grid.Dims(); r != 10 || c != 5 {
		t.Fatalf("Cropped grid is %dx%d, want 10x5", r, c)
	}
	if res.Grid.At(0, 0) != 5 || res.Grid.At(9, 4) != 99 {
		t.Errorf("Unexpected crop corners %g and %g", res.Grid.At(0, 0), res.Grid.At(9, 4))
	}
	if res.Display != o.Display {
		t.Errorf("Result display extent = %s, want %s", res.Display, o.Display)
	}
}

func TestProcess_ClipsBeforeSmoothing(t *testing.T) {
	g := mat.NewDense(21, 21, nil)
	g.Set(10, 10, 1000)

	o := DefaultOptions()
	o.DataMax = 1
	o.SigmaOmega, o.SigmaTheta = 1, 1
	res, err := Process(g, o)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	// Smoothing a clipped unit spike can never exceed the ceiling.
	if m := mat.Max(res.Grid); m > 1 {
		t.Errorf("max after clip+smooth = %g, want <= 1", m)
	}
	if math.Abs(mat.Sum(res.Grid)-1) > 1e-9 {
		t.Errorf("mass after clip+smooth = %g, want 1", mat.Sum(res.Grid))
	}
}

func TestProcess_SmoothingNeedsBothSigmas(t *testing.T) {
	g := mat.NewDense(5, 5, nil)
	g.Set(2, 2, 1)

	o := DefaultOptions()
	o.SigmaOmega = 2
	res, err := Process(g, o)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if !mat.Equal(res.Grid, g) {
		t.Error("Grid smoothed with only one sigma set")
	}
}

func TestProcess_SplitThenCrop(t *testing.T) {
	g := mat.NewDense(20, 4, nil)
	for i := 0; i < 20; i++ {
		g.Set(i, 0, float64(i))
	}

	o := DefaultOptions()
	o.Split = AngleRange{First: 10, Last: 20}
	o.Display = Extent{0, 1, 45, 90}
	res, err := Process(g, o)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	// Rows 10..19 remain after the split; the upper half of those are 15..19.
	if r, _ := res.Grid.Dims(); r != 5 || res.Grid.At(0, 0) != 15 {
		t.Errorf("Split+crop gave %d rows starting at %g, want 5 rows starting at 15", r, res.Grid.At(0, 0))
	}
}

func TestProcess_RejectsOutOfRangeDisplay(t *testing.T) {
	o := DefaultOptions()
	o.Display = Extent{0, 2, 0, 90}

	_, err := Process(constGrid(4, 4, 1), o)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Errorf("Expected *RangeError, got %v", err)
	}
}

func TestProcess_FFTMethod(t *testing.T) {
	g := mat.NewDense(8, 16, nil)
	g.Set(3, 7, 5)

	o := DefaultOptions()
	o.SigmaOmega, o.SigmaTheta = 1.5, 0.7
	direct, err := Process(g, o)
	if err != nil {
		t.Fatal(err)
	}
	o.Method = Spectral
	spectral, err := Process(g, o)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(direct.Grid, spectral.Grid, 1e-9) {
		t.Error("FFT smoothing differs from separable smoothing")
	}
}

func TestOptionsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*Options)
		wantErr error
	}{
		{name: "defaults", modify: func(o *Options) {}},
		{name: "log omega with zero bound", modify: func(o *Options) { o.LogOmega = true }, wantErr: ErrNegativeOmega},
		{name: "log omega positive", modify: func(o *Options) {
			o.LogOmega = true
			o.Data = Extent{0.1, 10, 0, 90}
			o.Display = Extent{1, 10, 0, 90}
		}},
		{name: "linear negative display", modify: func(o *Options) { o.Display.OmegaMin = -0.1 }, wantErr: ErrNegativeOmega},
		{name: "linear negative data", modify: func(o *Options) { o.Data.OmegaMax = -1 }, wantErr: ErrNegativeOmega},
		{name: "degenerate theta", modify: func(o *Options) { o.Display.ThetaMax = 0 }, wantErr: ErrDegenerateExtent},
		{name: "degenerate omega", modify: func(o *Options) { o.Data.OmegaMax = 0 }, wantErr: ErrDegenerateExtent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			tc.modify(&o)
			err := o.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestClip(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 5, -2, 7, 3, 9})

	once := Clip(g, 4)
	want := mat.NewDense(2, 3, []float64{1, 4, -2, 4, 3, 4})
	if !mat.Equal(once, want) {
		t.Errorf("Clip() = %v, want %v", mat.Formatted(once), mat.Formatted(want))
	}
	if twice := Clip(once, 4); !mat.Equal(twice, once) {
		t.Error("Clip() is not idempotent")
	}
	if g.At(0, 1) != 5 {
		t.Error("Clip() modified its input")
	}
	if Clip(g, Disabled) != g {
		t.Error("Clip(Disabled) should return the input unchanged")
	}
}

func TestSummarize(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{0, -1, 3, 0.5, 2, 1})
	st := Summarize(g)

	if st.Min != -1 || st.Max != 3 || st.MinPositive != 0.5 {
		t.Errorf("Summarize() = min %g max %g minPos %g", st.Min, st.Max, st.MinPositive)
	}
	want := []float64{0.5, 1, 4}
	for j, v := range want {
		if st.Profile[j] != v {
			t.Errorf("Profile[%d] = %g, want %g", j, st.Profile[j], v)
		}
	}

	if st := Summarize(mat.NewDense(1, 2, []float64{0, -3})); !math.IsNaN(st.MinPositive) {
		t.Errorf("MinPositive = %g for a grid without positive values, want NaN", st.MinPositive)
	}
}
