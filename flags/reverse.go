package flags

import "fmt"

// ReverseBits reverses the order of the low width bits of x.
// Example: ReverseBits(0b0001, 4) = 0b1000 = 8.
func ReverseBits(x, width int) (int, error) {
	if err := validateWidth(width); err != nil {
		return 0, err
	}
	if !fits(x, width) {
		return 0, fmt.Errorf("%w: %d in %d bits", ErrOverflow, x, width)
	}

	return reverseBits(x, width), nil
}

func reverseBits(x, width int) int {
	result := 0
	for range width {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// Reverse returns a new slice holding ReverseBits of every value. The input
// slice is not modified.
func Reverse(values []int, width int) ([]int, error) {
	if err := validate(values, width); err != nil {
		return nil, err
	}

	out := make([]int, len(values))
	for i, x := range values {
		out[i] = reverseBits(x, width)
	}

	return out, nil
}

// ReverseInPlace overwrites values with their bit-reversed form. All values
// are validated first; on error values is left unchanged.
func ReverseInPlace(values []int, width int) error {
	if err := validate(values, width); err != nil {
		return err
	}

	for i, x := range values {
		values[i] = reverseBits(x, width)
	}

	return nil
}

func validate(values []int, width int) error {
	if err := validateWidth(width); err != nil {
		return err
	}
	for i, x := range values {
		if !fits(x, width) {
			return fmt.Errorf("%w: values[%d]=%d in %d bits", ErrOverflow, i, x, width)
		}
	}
	return nil
}
