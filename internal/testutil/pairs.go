package testutil

import "math/rand"

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// LinearPairs returns x = 1..n and y = slope*x + intercept plus deterministic
// noise of the given amplitude.
func LinearPairs(slope, intercept, noise float64, n int, seed int64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	jitter := DeterministicNoise(seed, noise, n)
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = slope*x[i] + intercept + jitter[i]
	}
	return x, y
}

// CircularShift returns x rotated right by k samples (left for negative k).
func CircularShift(x []float64, k int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	k = ((k % n) + n) % n
	for i := range x {
		out[(i+k)%n] = x[i]
	}
	return out
}
