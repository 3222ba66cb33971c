package lag

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// directThreshold is the shorter input length from which Correlate switches to
// the FFT path.
const directThreshold = 64

// Correlate returns the full linear cross-correlation of a and b, of length
// len(a)+len(b)-1, where element k holds lag k-(len(b)-1).
func Correlate(a, b []float64) ([]float64, error) {
	if err := validate(a, b); err != nil {
		return nil, err
	}
	return correlate(a, b)
}

func correlate(a, b []float64) ([]float64, error) {
	if min(len(a), len(b)) < directThreshold {
		return correlateDirect(a, b), nil
	}
	return correlateFFT(a, b)
}

// CorrelateDirect evaluates every lag as a dot product over the overlap of a
// and the shifted b.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if err := validate(a, b); err != nil {
		return nil, err
	}
	return correlateDirect(a, b), nil
}

func correlateDirect(a, b []float64) []float64 {
	n, m := len(a), len(b)
	out := make([]float64, n+m-1)

	for k := range out {
		lag := LagFromIndex(k, m)
		ai, bi := max(lag, 0), max(-lag, 0)
		overlap := min(n-ai, m-bi)
		out[k] = vecmath.DotProduct(a[ai:ai+overlap], b[bi:bi+overlap])
	}

	return out
}

// CorrelateFFT evaluates the cross-correlation as the inverse transform of
// A·conj(B), zero-padded to a power of two so the circular result does not
// wrap onto itself.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if err := validate(a, b); err != nil {
		return nil, err
	}
	return correlateFFT(a, b)
}

func correlateFFT(a, b []float64) ([]float64, error) {
	n, m := len(a), len(b)
	size := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("lag: FFT plan of size %d: %w", size, err)
	}

	forward := func(x []float64) ([]complex128, error) {
		in := make([]complex128, size)
		for i, v := range x {
			in[i] = complex(v, 0)
		}
		out := make([]complex128, size)
		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("lag: forward FFT: %w", err)
		}
		return out, nil
	}

	spectrumA, err := forward(a)
	if err != nil {
		return nil, err
	}
	spectrumB, err := forward(b)
	if err != nil {
		return nil, err
	}

	for i, v := range spectrumB {
		spectrumA[i] *= complex(real(v), -imag(v))
	}

	circular := make([]complex128, size)
	if err := plan.Inverse(circular, spectrumA); err != nil {
		return nil, fmt.Errorf("lag: inverse FFT: %w", err)
	}

	// Negative lags wrap to the end of the circular result.
	out := make([]float64, n+m-1)
	for k := range out {
		lag := LagFromIndex(k, m)
		out[k] = real(circular[(lag+size)%size])
	}

	return out, nil
}

// FindPeak returns the position and value of the first maximum of corr, or
// (-1, 0) when corr is empty.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	for i, v := range corr {
		if i == 0 || v > value {
			index, value = i, v
		}
	}
	return index, value
}

// LagFromIndex converts a position in a correlation result to its lag.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag to its position in a correlation result.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
