package span

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-align/search"
)

// Errors returned by the span functions. Unsorted or NaN-containing indices
// fail with the corresponding search errors.
var (
	ErrInvalidRange  = errors.New("span: start after end")
	ErrEmptySpan     = errors.New("span: no index values in range")
	ErrShapeMismatch = errors.New("span: column length differs from index")
)

// Select returns the half-open bounds [lo, hi) of the entries of the ascending
// index with start <= index[i] <= end.
func Select(index []float64, start, end float64) (lo, hi int, err error) {
	if start > end {
		return 0, 0, fmt.Errorf("%w: %g > %g", ErrInvalidRange, start, end)
	}

	s, err := search.NewSorted(index)
	if err != nil {
		return 0, 0, err
	}

	return selectSorted(s, start, end)
}

func selectSorted(s *search.Sorted, start, end float64) (lo, hi int, err error) {
	lo, err = s.FindClosest(start, search.ClosestNotBelow)
	if errors.Is(err, search.ErrNoEligibleCandidate) {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrEmptySpan, start, end)
	}
	if err != nil {
		return 0, 0, err
	}

	last, err := s.FindClosest(end, search.ClosestNotAbove)
	if errors.Is(err, search.ErrNoEligibleCandidate) {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrEmptySpan, start, end)
	}
	if err != nil {
		return 0, 0, err
	}

	// FindClosest returns the first of equal values; extend over duplicates.
	hi = last + 1
	for hi < s.Len() && s.At(hi) == s.At(last) {
		hi++
	}

	if hi <= lo {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrEmptySpan, start, end)
	}

	return lo, hi, nil
}

// Timespan returns the first and last value of the index.
func Timespan(index []float64) (first, last float64, err error) {
	if len(index) == 0 {
		return 0, 0, ErrEmptySpan
	}
	return index[0], index[len(index)-1], nil
}

// Truncate returns copies of the index and of every column restricted to the
// entries whose index value lies in [start, end].
func Truncate(index []float64, start, end float64, columns ...[]float64) ([]float64, [][]float64, error) {
	for i, col := range columns {
		if len(col) != len(index) {
			return nil, nil, fmt.Errorf("%w: column %d has %d values, index %d", ErrShapeMismatch, i, len(col), len(index))
		}
	}

	lo, hi, err := Select(index, start, end)
	if err != nil {
		return nil, nil, err
	}

	out := make([][]float64, len(columns))
	for i, col := range columns {
		out[i] = slices.Clone(col[lo:hi])
	}

	return slices.Clone(index[lo:hi]), out, nil
}
