// Package code represents the human-facing tenant code (a slug such as
// "grand-hotel-lisboa").
package code

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Code represents a tenant code in the system.
type Code struct {
	value string
}

// String returns the value of the code.
func (c Code) String() string {
	return c.value
}

// Equal provides support for the go-cmp package and testing.
func (c Code) Equal(c2 Code) bool {
	return c.value == c2.value
}

// MarshalText provides support for logging and any marshal needs.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// =============================================================================

var codeRegEx = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const maxLen = 50

// Parse parses the string value and returns a code if the value is a
// well formed slug.
func Parse(value string) (Code, error) {
	if len(value) < 2 || len(value) > maxLen || !codeRegEx.MatchString(value) {
		return Code{}, fmt.Errorf("invalid code %q", value)
	}

	return Code{value}, nil
}

// MustParse parses the string value and returns a code. If an error occurs
// the function panics.
func MustParse(value string) Code {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return c
}

// FromName derives a code from a display name: accents are removed, the
// text is lower cased and every run of other characters becomes a hyphen.
func FromName(name string) (Code, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	plain, _, err := transform.String(t, name)
	if err != nil {
		return Code{}, fmt.Errorf("normalize: %w", err)
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if len(slug) > maxLen {
		slug = strings.TrimSuffix(slug[:maxLen], "-")
	}

	return Parse(slug)
}
