package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Method selects how the Gaussian blur is computed.
type Method string

const (
	// Separable convolves rows then columns directly with the 1-D kernel.
	Separable Method = "separable"
	// Spectral performs the same convolutions through FFT products.
	Spectral Method = "fft"
)

// ParseMethod validates a smoothing method name from the command line.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case Separable, Spectral:
		return m, nil
	case "":
		return Separable, nil
	}
	return "", fmt.Errorf("unknown smoothing method %q (want %s or %s)", s, Separable, Spectral)
}

// HalfWidth returns the kernel half-width used for sigma, round(5σ).
func HalfWidth(sigma float64) int {
	return int(math.Round(5 * sigma))
}

// GaussianKernel returns the normalised kernel exp(-k²/2σ²) for
// k in [-half, half]. It returns nil when there is nothing to convolve.
func GaussianKernel(sigma float64, half int) []float64 {
	if half <= 0 || sigma <= 0 {
		return nil
	}

	k := make([]float64, 2*half+1)
	for i := range k {
		x := float64(i - half)
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

// Smooth2D applies a separable Gaussian blur to g and returns a new grid.
// The X kernel (sigmaX, halfX) runs along ω, i.e. within each row; the Y
// kernel runs along θ within each column. Samples past an edge are taken
// from the mirrored grid, so a constant input stays constant.
func Smooth2D(g *mat.Dense, sigmaX float64, halfX int, sigmaY float64, halfY int) *mat.Dense {
	return smooth2D(g, GaussianKernel(sigmaX, halfX), GaussianKernel(sigmaY, halfY), convolveDirect)
}

// convolveFunc convolves a reflect-padded signal with kernel k and returns
// the len(padded)-len(k)+1 valid samples.
type convolveFunc func(padded, k []float64) []float64

func smooth2D(g *mat.Dense, kx, ky []float64, conv convolveFunc) *mat.Dense {
	rows, cols := g.Dims()
	out := mat.DenseCopyOf(g)

	if kx != nil {
		row := make([]float64, cols)
		for i := 0; i < rows; i++ {
			mat.Row(row, i, out)
			out.SetRow(i, conv(reflectPad(row, len(kx)/2), kx))
		}
	}

	if ky != nil {
		col := make([]float64, rows)
		for j := 0; j < cols; j++ {
			mat.Col(col, j, out)
			out.SetCol(j, conv(reflectPad(col, len(ky)/2), ky))
		}
	}

	return out
}

// reflectPad extends s by half samples on both sides using symmetric
// reflection about the edges (the edge sample is repeated). Half-widths
// larger than len(s) keep reflecting back and forth.
func reflectPad(s []float64, half int) []float64 {
	n := len(s)
	padded := make([]float64, n+2*half)
	for i := range padded {
		padded[i] = s[reflectIndex(i-half, n)]
	}
	return padded
}

func reflectIndex(i, n int) int {
	m := i % (2 * n)
	if m < 0 {
		m += 2 * n
	}
	if m >= n {
		m = 2*n - 1 - m
	}
	return m
}

// convolveDirect accumulates one scaled, shifted copy of the input per tap.
// The Gaussian is symmetric so correlation and convolution coincide.
func convolveDirect(padded, k []float64) []float64 {
	n := len(padded) - len(k) + 1
	out := make([]float64, n)
	for j, w := range k {
		floats.AddScaled(out, w, padded[j:j+n])
	}
	return out
}
