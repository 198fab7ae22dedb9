// Package password represents a password in the system.
package password

import (
	"errors"
	"fmt"
)

// Password represents a password in the system.
type Password struct {
	value string
}

// String returns the value of the password.
func (p Password) String() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Password) Equal(p2 Password) bool {
	return p.value == p2.value
}

// MarshalText hides the value from logs.
func (p Password) MarshalText() ([]byte, error) {
	return []byte("********"), nil
}

// =============================================================================

// bcrypt ignores input past 72 bytes.
const (
	minLen = 8
	maxLen = 72
)

// Parse parses the string value and returns a password if the value complies
// with the rules for a password.
func Parse(value string) (Password, error) {
	if len(value) < minLen || len(value) > maxLen {
		return Password{}, fmt.Errorf("invalid password: must be %d to %d bytes", minLen, maxLen)
	}

	return Password{value}, nil
}

// ParseConfirm parses the value and checks it matches the confirmation.
func ParseConfirm(value string, confirm string) (Password, error) {
	pass, err := Parse(value)
	if err != nil {
		return Password{}, err
	}

	if value != confirm {
		return Password{}, errors.New("passwords do not match")
	}

	return pass, nil
}

// MustParse parses the string value and returns a password if the value
// complies with the rules for a password. If an error occurs the function panics.
func MustParse(value string) Password {
	pass, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return pass
}
