package reservationbus

import "fmt"

// The set of statuses a reservation moves through.
var (
	StatusBooked     = newStatus("BOOKED")
	StatusCheckedIn  = newStatus("CHECKED_IN")
	StatusCheckedOut = newStatus("CHECKED_OUT")
	StatusCancelled  = newStatus("CANCELLED")
)

var transitions = map[Status][]Status{
	StatusBooked:    {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// =============================================================================

var statuses = make(map[string]Status)

// Status represents the state of a reservation.
type Status struct {
	value string
}

func newStatus(s string) Status {
	st := Status{s}
	statuses[s] = st
	return st
}

// String returns the name of the status.
func (s Status) String() string {
	return s.value
}

// Equal provides support for the go-cmp package and testing.
func (s Status) Equal(s2 Status) bool {
	return s.value == s2.value
}

// MarshalText provides support for logging and any marshal needs.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// CanMoveTo reports whether a reservation in s may be moved to next.
func (s Status) CanMoveTo(next Status) bool {
	if s == next {
		return true
	}

	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}

	return false
}

// ParseStatus parses the string value and returns a status if one exists.
func ParseStatus(value string) (Status, error) {
	st, exists := statuses[value]
	if !exists {
		return Status{}, fmt.Errorf("invalid status %q", value)
	}

	return st, nil
}

// MustParseStatus parses the string value and returns a status if one
// exists. If an error occurs the function panics.
func MustParseStatus(value string) Status {
	st, err := ParseStatus(value)
	if err != nil {
		panic(err)
	}

	return st
}
