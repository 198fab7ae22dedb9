// Package unit represents the measure an ingredient is stocked in.
package unit

import "fmt"

// The set of units that can be used.
var (
	Kilogram   = newUnit("KG")
	Gram       = newUnit("G")
	Litre      = newUnit("L")
	Millilitre = newUnit("ML")
	Each       = newUnit("UNIT")
)

// =============================================================================

// Set of known units.
var units = make(map[string]Unit)

// Unit represents a unit of measure in the system.
type Unit struct {
	value string
}

func newUnit(u string) Unit {
	un := Unit{u}
	units[u] = un
	return un
}

// String returns the symbol of the unit.
func (u Unit) String() string {
	return u.value
}

// Equal provides support for the go-cmp package and testing.
func (u Unit) Equal(u2 Unit) bool {
	return u.value == u2.value
}

// MarshalText provides support for logging and any marshal needs.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.value), nil
}

// =============================================================================

// Parse parses the string value and returns a unit if one exists.
func Parse(value string) (Unit, error) {
	u, exists := units[value]
	if !exists {
		return Unit{}, fmt.Errorf("invalid unit %q", value)
	}

	return u, nil
}

// MustParse parses the string value and returns a unit if one exists. If an
// error occurs the function panics.
func MustParse(value string) Unit {
	u, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return u
}
