// Package vertical represents the line of business a tenant runs.
package vertical

import "fmt"

// The set of verticals that can be used.
var (
	Hotel      = newVertical("HOTEL")
	Brewery    = newVertical("BREWERY")
	Restaurant = newVertical("RESTAURANT")
	Salon      = newVertical("SALON")
	Retail     = newVertical("RETAIL")
)

// =============================================================================

// Set of known verticals.
var verticals = make(map[string]Vertical)

// Vertical represents a line of business in the system.
type Vertical struct {
	value string
}

func newVertical(v string) Vertical {
	vt := Vertical{v}
	verticals[v] = vt
	return vt
}

// String returns the name of the vertical.
func (v Vertical) String() string {
	return v.value
}

// Equal provides support for the go-cmp package and testing.
func (v Vertical) Equal(v2 Vertical) bool {
	return v.value == v2.value
}

// MarshalText provides support for logging and any marshal needs.
func (v Vertical) MarshalText() ([]byte, error) {
	return []byte(v.value), nil
}

// =============================================================================

// Parse parses the string value and returns a vertical if one exists.
func Parse(value string) (Vertical, error) {
	v, exists := verticals[value]
	if !exists {
		return Vertical{}, fmt.Errorf("invalid vertical %q", value)
	}

	return v, nil
}

// MustParse parses the string value and returns a vertical if one exists.
// If an error occurs the function panics.
func MustParse(value string) Vertical {
	v, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return v
}
