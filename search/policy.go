package search

import (
	"fmt"
	"strings"
)

// Policy restricts which reference elements are eligible matches for a query.
type Policy int

const (
	// Closest accepts every reference element.
	Closest Policy = iota

	// ClosestNotAbove accepts elements less than or equal to the query.
	ClosestNotAbove

	// ClosestNotBelow accepts elements greater than or equal to the query.
	ClosestNotBelow
)

// String returns the canonical token of the policy.
func (p Policy) String() string {
	switch p {
	case Closest:
		return "closest"
	case ClosestNotAbove:
		return "closest_low"
	case ClosestNotBelow:
		return "closest_high"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p >= Closest && p <= ClosestNotBelow
}

func (p Policy) validate() error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPolicy, int(p))
	}
	return nil
}

// eligible reports whether a candidate with signed difference d = ref - query
// passes the policy.
func (p Policy) eligible(d float64) bool {
	switch p {
	case ClosestNotAbove:
		return d <= 0
	case ClosestNotBelow:
		return d >= 0
	default:
		return true
	}
}

// ParsePolicy converts a token into a Policy. Accepted tokens are the canonical
// names ("closest", "closest_low", "closest_high") and the aliases "not_above"
// and "not_below". Matching ignores case and surrounding space.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "closest":
		return Closest, nil
	case "closest_low", "not_above":
		return ClosestNotAbove, nil
	case "closest_high", "not_below":
		return ClosestNotBelow, nil
	default:
		return Closest, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
