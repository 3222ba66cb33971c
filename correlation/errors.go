package correlation

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the correlation types.
var (
	ErrShapeMismatch    = errors.New("correlation: sequence lengths differ")
	ErrInsufficientData = errors.New("correlation: insufficient data")
	ErrInvalidInput     = errors.New("correlation: NaN or infinite value in input")
)

func validateShape(primary, correlant, index []float64, hasIndex bool) error {
	if len(primary) != len(correlant) {
		return fmt.Errorf("%w: primary %d, correlant %d", ErrShapeMismatch, len(primary), len(correlant))
	}
	if hasIndex && len(index) != len(primary) {
		return fmt.Errorf("%w: index %d, primary %d", ErrShapeMismatch, len(index), len(primary))
	}
	return nil
}

func validateFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d]=%g", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}
