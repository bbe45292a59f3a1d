package spectrum

import (
	"math/cmplx"

	"github.com/argusdusty/gofft"
	"gonum.org/v1/gonum/mat"
)

// SmoothSpectral computes the same blur as Smooth2D with each 1-D
// convolution done as a product of FFTs. The results agree with Smooth2D
// to rounding error; it pays off for wide kernels on long rows.
func SmoothSpectral(g *mat.Dense, sigmaX float64, halfX int, sigmaY float64, halfY int) *mat.Dense {
	return smooth2D(g, GaussianKernel(sigmaX, halfX), GaussianKernel(sigmaY, halfY), convolveFFT)
}

func convolveFFT(padded, k []float64) []float64 {
	full := len(padded) + len(k) - 1
	n := nextPow2(full)

	x := gofft.Float64ToComplex128Array(zeroExtend(padded, n))
	h := gofft.Float64ToComplex128Array(zeroExtend(k, n))
	// Lengths are powers of two, the only error gofft reports.
	_ = gofft.FFT(x)
	_ = gofft.FFT(h)

	// Inverse transform through the forward one: ifft(X) = conj(fft(conj(X))) / n.
	for i := range x {
		x[i] = cmplx.Conj(x[i] * h[i])
	}
	_ = gofft.FFT(x)

	shift := len(k) - 1
	out := make([]float64, len(padded)-len(k)+1)
	scale := 1 / float64(n)
	for i := range out {
		out[i] = real(x[i+shift]) * scale
	}
	return out
}

func zeroExtend(s []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, s)
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
