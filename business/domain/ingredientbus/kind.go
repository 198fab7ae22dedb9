package ingredientbus

import "fmt"

// The set of ledger movement kinds.
var (
	KindReceipt     = newKind("RECEIPT", 1)
	KindConsumption = newKind("CONSUMPTION", -1)
	KindAdjustment  = newKind("ADJUSTMENT", 0)
	KindWaste       = newKind("WASTE", -1)
)

// =============================================================================

var kinds = make(map[string]Kind)

// Kind represents the reason stock moved. The sign says which way a
// positive quantity moves the balance; zero means the quantity carries its
// own sign.
type Kind struct {
	value string
	sign  int
}

func newKind(k string, sign int) Kind {
	kd := Kind{value: k, sign: sign}
	kinds[k] = kd
	return kd
}

// String returns the name of the kind.
func (k Kind) String() string {
	return k.value
}

// Equal provides support for the go-cmp package and testing.
func (k Kind) Equal(k2 Kind) bool {
	return k.value == k2.value
}

// MarshalText provides support for logging and any marshal needs.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.value), nil
}

// ParseKind parses the string value and returns a kind if one exists.
func ParseKind(value string) (Kind, error) {
	k, exists := kinds[value]
	if !exists {
		return Kind{}, fmt.Errorf("invalid movement kind %q", value)
	}

	return k, nil
}

// MustParseKind parses the string value and returns a kind if one exists.
// If an error occurs the function panics.
func MustParseKind(value string) Kind {
	k, err := ParseKind(value)
	if err != nil {
		panic(err)
	}

	return k
}
