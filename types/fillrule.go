package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FillRule selects the policy used to decide which planar regions formed
// by a set of crossing edges are "inside" the filled shape.
type FillRule uint8

// Valid values for FillRule.
const (
	// Winding fills regions with a nonzero winding number.
	Winding FillRule = iota

	// EvenOdd fills regions crossed by an odd number of edges.
	EvenOdd
)

// String converts a FillRule constant into its string representation.
//
// Panics:
//   - If the FillRule value is not one of the defined constants.
func (r FillRule) String() string {
	switch r {
	case Winding:
		return "Winding"
	case EvenOdd:
		return "EvenOdd"
	default:
		panic(fmt.Errorf("unsupported FillRule: %d", r))
	}
}

// ParseFillRule converts a case-insensitive name ("winding" or "evenodd")
// into its FillRule constant.
func ParseFillRule(s string) (FillRule, error) {
	switch strings.ToLower(s) {
	case "winding":
		return Winding, nil
	case "evenodd":
		return EvenOdd, nil
	default:
		return 0, fmt.Errorf("unsupported fill rule %q: want %q or %q", s, "winding", "evenodd")
	}
}

// MarshalJSON serializes FillRule as its lowercase name.
func (r FillRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(r.String()))
}

// UnmarshalJSON deserializes a fill rule name into FillRule.
func (r *FillRule) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	rule, err := ParseFillRule(name)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}
