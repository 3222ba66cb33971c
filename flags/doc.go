// Package flags manipulates integer-encoded quality flags.
//
// Instruments commonly pack a set of boolean quality criteria into the low
// bits of an integer. Archives disagree on bit order: some place the most
// severe criterion in the lowest bit, some in the highest. [Reverse] remaps one
// convention onto the other by reversing the order of the low width bits of
// every value:
//
//	out, err := flags.Reverse([]int{1, 0, 0, 2, 0, 8}, 4) // [8 0 0 4 0 1]
//
// Values that do not fit into width bits are rejected with [ErrOverflow]
// instead of being truncated. Reversal is an involution: applying it twice
// with the same width restores the input.
//
// [Quality] maps the coarse data-quality levels used by archive readers onto
// the largest flag value each level accepts, and [Accept] turns a flag
// sequence into an acceptance mask.
package flags
