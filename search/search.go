package search

import "math"

// FindClosest returns the index of the reference element closest to v that the
// policy accepts. Ties resolve to the lowest index.
func FindClosest(reference []float64, v float64, p Policy) (int, error) {
	if err := p.validate(); err != nil {
		return -1, err
	}
	if err := validateValues("reference", reference); err != nil {
		return -1, err
	}
	if err := validateQuery(v); err != nil {
		return -1, err
	}

	return closest(reference, v, p)
}

// FindClosestAll returns, for every query, the index FindClosest would return.
// The result has the length and order of queries. All inputs are validated
// before any query is searched; on error no indices are returned.
func FindClosestAll(reference, queries []float64, p Policy) ([]int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := validateValues("reference", reference); err != nil {
		return nil, err
	}
	if err := validateValues("query", queries); err != nil {
		return nil, err
	}

	out := make([]int, len(queries))
	for q, v := range queries {
		i, err := closest(reference, v, p)
		if err != nil {
			return nil, err
		}
		out[q] = i
	}

	return out, nil
}

// closest scans reference once. Strict comparison keeps the first minimum.
func closest(reference []float64, v float64, p Policy) (int, error) {
	best := -1
	bestDist := math.Inf(1)

	for i, r := range reference {
		d := diff(r, v)
		if !p.eligible(d) {
			continue
		}

		dist := math.Abs(d)
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best < 0 {
		return -1, noCandidate(v, p)
	}

	return best, nil
}

// diff returns r - v, defined as 0 for equal values so that equal infinities
// compare as an exact match instead of producing NaN.
func diff(r, v float64) float64 {
	if r == v {
		return 0
	}
	return r - v
}
