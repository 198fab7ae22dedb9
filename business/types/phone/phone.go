// Package phone represents a contact phone number. Numbers are stored in a
// compact form: an optional leading plus followed by digits only.
package phone

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	minDigits = 6
	maxDigits = 15
)

// Phone represents a phone number in the system.
type Phone struct {
	value string
}

// String returns the compact form of the number.
func (p Phone) String() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Phone) Equal(p2 Phone) bool {
	return p.value == p2.value
}

// MarshalText provides support for logging and any marshal needs.
func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// Parse accepts digits with an optional leading plus, separated by spaces,
// dots, hyphens or parentheses, and returns the compact form.
func Parse(value string) (Phone, error) {
	v, err := compact(value)
	if err != nil {
		return Phone{}, err
	}

	return Phone{v}, nil
}

// MustParse parses the string value and returns a phone number. If an error
// occurs the function panics.
func MustParse(value string) Phone {
	p, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return p
}

func compact(value string) (string, error) {
	value = strings.TrimSpace(value)

	var b strings.Builder
	digits := 0

	for i, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++

		case r == '+' && i == 0:
			b.WriteRune(r)

		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':

		default:
			return "", fmt.Errorf("invalid phone %q", value)
		}
	}

	if digits < minDigits || digits > maxDigits {
		return "", fmt.Errorf("invalid phone %q: must have %d to %d digits", value, minDigits, maxDigits)
	}

	return b.String(), nil
}

// =============================================================================

// Null is a phone number that may be absent.
type Null struct {
	value string
	valid bool
}

// ParseNull parses the string value. The empty string is an absent number.
func ParseNull(value string) (Null, error) {
	if strings.TrimSpace(value) == "" {
		return Null{}, nil
	}

	v, err := compact(value)
	if err != nil {
		return Null{}, err
	}

	return Null{v, true}, nil
}

// MustParseNull parses the string value and returns a phone number. If an
// error occurs the function panics.
func MustParseNull(value string) Null {
	n, err := ParseNull(value)
	if err != nil {
		panic(err)
	}

	return n
}

// Valid reports whether a number is present.
func (n Null) Valid() bool {
	return n.valid
}

// String returns the compact form of the number, or the empty string.
func (n Null) String() string {
	return n.value
}

// Equal provides support for the go-cmp package and testing.
func (n Null) Equal(n2 Null) bool {
	return n.value == n2.value && n.valid == n2.valid
}

// MarshalText provides support for logging and any marshal needs.
func (n Null) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// ToSQLNullString converts a Null value to a sql NullString.
func ToSQLNullString(n Null) sql.NullString {
	return sql.NullString{
		String: n.value,
		Valid:  n.valid,
	}
}
