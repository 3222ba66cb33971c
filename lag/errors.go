package lag

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the lag functions.
var (
	ErrEmptyInput   = errors.New("lag: empty input")
	ErrInvalidInput = errors.New("lag: NaN or infinite sample")
	ErrInvalidLag   = errors.New("lag: maximum lag must be >= 0")
	ErrZeroEnergy   = errors.New("lag: input has zero energy after mean removal")
)

// validate rejects empty sequences and non-finite samples.
func validate(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if err := checkFinite("a", a); err != nil {
		return err
	}
	return checkFinite("b", b)
}

func checkFinite(name string, x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d]=%g", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}
