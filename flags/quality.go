package flags

import (
	"fmt"
	"strings"
)

// Quality is a coarse data-quality level.
type Quality int

const (
	// Good accepts only unflagged values.
	Good Quality = iota
	// Patchy accepts values with any of the four lowest flags raised.
	Patchy
	// Bad accepts nearly everything.
	Bad
)

var qualityMax = [...]int{
	Good:   0,
	Patchy: 15,
	Bad:    100000,
}

// ParseQuality converts "good", "patchy" or "bad" into a Quality.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return Good, nil
	case "patchy":
		return Patchy, nil
	case "bad":
		return Bad, nil
	default:
		return Good, fmt.Errorf("%w: %q (want good, patchy or bad)", ErrInvalidQuality, s)
	}
}

func (q Quality) String() string {
	switch q {
	case Good:
		return "good"
	case Patchy:
		return "patchy"
	case Bad:
		return "bad"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// MaxFlag returns the largest flag value accepted at this quality level.
// Unknown levels accept nothing and return -1.
func (q Quality) MaxFlag() int {
	if q < Good || q > Bad {
		return -1
	}
	return qualityMax[q]
}

// Accept reports, per value, whether value <= maxFlag.
func Accept(values []int, maxFlag int) []bool {
	out := make([]bool, len(values))
	for i, x := range values {
		out[i] = x <= maxFlag
	}
	return out
}

// Set reports whether flag bit number bit (0 = least significant) is raised
// in x. Bits outside [0, MaxWidth] are never set.
func Set(x, bit int) bool {
	if bit < 0 || bit > MaxWidth {
		return false
	}
	return x>>uint(bit)&1 == 1
}
