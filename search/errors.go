package search

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the search functions.
var (
	ErrInvalidInput        = errors.New("search: NaN in reference or query")
	ErrInvalidPolicy       = errors.New("search: invalid boundary policy")
	ErrNoEligibleCandidate = errors.New("search: no eligible candidate")
	ErrNotSorted           = errors.New("search: reference is not ascending")
)

func validateValues(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %s[%d]", ErrInvalidInput, name, i)
		}
	}
	return nil
}

func validateQuery(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: query", ErrInvalidInput)
	}
	return nil
}

func noCandidate(v float64, p Policy) error {
	return fmt.Errorf("%w: query %g under policy %s", ErrNoEligibleCandidate, v, p)
}
