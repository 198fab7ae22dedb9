// Package name represents a name in the system.
package name

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Name represents a name in the system.
type Name struct {
	value string
}

// String returns the value of the name.
func (n Name) String() string {
	return n.value
}

// Equal provides support for the go-cmp package and testing.
func (n Name) Equal(n2 Name) bool {
	return n.value == n2.value
}

// MarshalText provides support for logging and any marshal needs.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// =============================================================================

const (
	minLen = 2
	maxLen = 100
)

// Parse parses the string value and returns a name if the value complies
// with the rules for a name. Surrounding space is trimmed.
func Parse(value string) (Name, error) {
	value = strings.TrimSpace(value)

	if !utf8.ValidString(value) {
		return Name{}, fmt.Errorf("invalid name %q", value)
	}

	if n := utf8.RuneCountInString(value); n < minLen || n > maxLen {
		return Name{}, fmt.Errorf("invalid name %q: must be %d to %d characters", value, minLen, maxLen)
	}

	return Name{value}, nil
}

// MustParse parses the string value and returns a name if the value
// complies with the rules for a name. If an error occurs the function panics.
func MustParse(value string) Name {
	name, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return name
}
