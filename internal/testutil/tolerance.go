// Package testutil holds assertions and deterministic fixtures shared by the
// package tests.
package testutil

import (
	"math"
	"testing"
)

// within reports whether got is within eps of want. NaN matches only NaN and
// an infinity matches only the same infinity.
func within(got, want, eps float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	default:
		return math.Abs(got-want) <= eps
	}
}

// RequireNearlyEqual stops the test when the named statistic is not within
// eps of want.
func RequireNearlyEqual(t testing.TB, name string, got, want, eps float64) {
	t.Helper()
	if !within(got, want, eps) {
		t.Fatalf("%s = %.17g, want %.17g (|diff| %.3g > %.3g)", name, got, want, math.Abs(got-want), eps)
	}
}

// RequireSliceNearlyEqual stops the test at the first element further than
// eps from its counterpart, or when the lengths differ.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}

	for i := range got {
		if !within(got[i], want[i], eps) {
			_, worst := WorstDiff(got, want)
			t.Fatalf("[%d] = %.17g, want %.17g (max |diff| %.3g, eps %.3g)", i, got[i], want[i], worst, eps)
		}
	}
}

// WorstDiff returns the position and size of the largest absolute difference
// over the common prefix of a and b, or -1 when there is none. Positions
// whose difference is NaN are skipped.
func WorstDiff(a, b []float64) (int, float64) {
	at, worst := -1, 0.0
	for i := range min(len(a), len(b)) {
		d := math.Abs(a[i] - b[i])
		if d > worst || (at < 0 && d == 0) {
			at, worst = i, d
		}
	}
	return at, worst
}
