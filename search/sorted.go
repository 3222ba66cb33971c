package search

import (
	"fmt"
	"math"
	"sort"
)

// Sorted answers nearest-value queries against an ascending reference in
// O(log n) per query. The reference is validated and copied once by NewSorted.
type Sorted struct {
	values []float64
}

// NewSorted validates that reference is NaN-free and ascending (duplicates
// allowed) and returns a searcher over a private copy of it.
func NewSorted(reference []float64) (*Sorted, error) {
	if err := validateValues("reference", reference); err != nil {
		return nil, err
	}
	for i := 1; i < len(reference); i++ {
		if reference[i] < reference[i-1] {
			return nil, fmt.Errorf("%w: reference[%d]=%g < reference[%d]=%g",
				ErrNotSorted, i, reference[i], i-1, reference[i-1])
		}
	}

	values := make([]float64, len(reference))
	copy(values, reference)

	return &Sorted{values: values}, nil
}

// Len returns the number of reference values.
func (s *Sorted) Len() int {
	return len(s.values)
}

// At returns the reference value at index i.
func (s *Sorted) At(i int) float64 {
	return s.values[i]
}

// FindClosest is the logarithmic-time counterpart of the package-level
// FindClosest.
func (s *Sorted) FindClosest(v float64, p Policy) (int, error) {
	if err := p.validate(); err != nil {
		return -1, err
	}
	if err := validateQuery(v); err != nil {
		return -1, err
	}

	return s.closest(v, p)
}

// FindClosestAll is the logarithmic-time counterpart of the package-level
// FindClosestAll.
func (s *Sorted) FindClosestAll(queries []float64, p Policy) ([]int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := validateValues("query", queries); err != nil {
		return nil, err
	}

	out := make([]int, len(queries))
	for q, v := range queries {
		i, err := s.closest(v, p)
		if err != nil {
			return nil, err
		}
		out[q] = i
	}

	return out, nil
}

func (s *Sorted) closest(v float64, p Policy) (int, error) {
	below, hasBelow := s.notAbove(v)
	above, hasAbove := s.notBelow(v)

	switch p {
	case ClosestNotAbove:
		if !hasBelow {
			return -1, noCandidate(v, p)
		}
		return below, nil
	case ClosestNotBelow:
		if !hasAbove {
			return -1, noCandidate(v, p)
		}
		return above, nil
	}

	switch {
	case hasBelow && hasAbove:
		// below < above whenever they differ, so ties keep below.
		if math.Abs(diff(s.values[above], v)) < math.Abs(diff(s.values[below], v)) {
			return above, nil
		}
		return below, nil
	case hasBelow:
		return below, nil
	case hasAbove:
		return above, nil
	default:
		return -1, noCandidate(v, p)
	}
}

// notBelow returns the first index holding the smallest value >= v.
func (s *Sorted) notBelow(v float64) (int, bool) {
	k := sort.SearchFloat64s(s.values, v)
	if k == len(s.values) {
		return -1, false
	}
	return k, true
}

// notAbove returns the first index holding the largest value <= v.
func (s *Sorted) notAbove(v float64) (int, bool) {
	k := sort.Search(len(s.values), func(i int) bool { return s.values[i] > v })
	if k == 0 {
		return -1, false
	}
	return sort.SearchFloat64s(s.values, s.values[k-1]), true
}
