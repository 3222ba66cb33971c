package flags

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxWidth is the widest bit field Reverse accepts. Results must stay
// non-negative ints.
const MaxWidth = bits.UintSize - 1

// Errors returned by the flag functions.
var (
	ErrOverflow       = errors.New("flags: value not representable in bit width")
	ErrInvalidWidth   = errors.New("flags: invalid bit width")
	ErrInvalidQuality = errors.New("flags: invalid quality level")
)

func validateWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("%w: %d (must be in [1,%d])", ErrInvalidWidth, width, MaxWidth)
	}
	return nil
}

func fits(x, width int) bool {
	return x >= 0 && x>>uint(width) == 0
}
