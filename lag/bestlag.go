package lag

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Result is the outcome of a lag search.
type Result struct {
	// Lag is the displacement at which a[i] best matches b[i-Lag].
	Lag int
	// Coefficient is the normalised correlation at Lag, in [-1, 1].
	Coefficient float64
}

// BestLag returns the lag in [-maxLag, maxLag] that maximises the
// cross-correlation of the mean-removed a and b, normalised by the product of
// their L2 norms. Lags beyond the overlap of the two sequences are not
// considered. Ties go to the smallest |lag|, then to the negative lag.
func BestLag(a, b []float64, maxLag int) (Result, error) {
	if err := validate(a, b); err != nil {
		return Result{}, err
	}
	if maxLag < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidLag, maxLag)
	}

	a0 := centre(a)
	b0 := centre(b)

	norm := math.Sqrt(vecmath.DotProduct(a0, a0) * vecmath.DotProduct(b0, b0))
	if norm == 0 {
		return Result{}, ErrZeroEnergy
	}

	corr, err := correlate(a0, b0)
	if err != nil {
		return Result{}, err
	}

	lo := max(-maxLag, -(len(b) - 1))
	hi := min(maxLag, len(a)-1)

	best := Result{Lag: 0, Coefficient: math.Inf(-1)}
	consider := func(l int) {
		if l < lo || l > hi {
			return
		}
		v := corr[IndexFromLag(l, len(b))] / norm
		if v > best.Coefficient {
			best = Result{Lag: l, Coefficient: v}
		}
	}

	consider(0)
	for d := 1; d <= max(-lo, hi); d++ {
		consider(-d)
		consider(d)
	}

	best.Coefficient = math.Max(-1, math.Min(1, best.Coefficient))
	return best, nil
}

// centre returns x divided by a power of two near its largest magnitude and
// with its mean removed. The coefficient is scale-invariant, and the scaling
// keeps the sums of squares finite for any finite input.
func centre(x []float64) []float64 {
	scale := 1.0
	if peak := vecmath.MaxAbs(x); peak > 0 {
		_, exp := math.Frexp(peak)
		scale = math.Ldexp(1, exp-1)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / scale
	}

	mean := vecmath.Sum(out) / float64(len(out))
	for i := range out {
		out[i] -= mean
	}
	return out
}
