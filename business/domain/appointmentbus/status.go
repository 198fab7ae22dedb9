package appointmentbus

import "fmt"

// The set of statuses an appointment can hold.
var (
	StatusScheduled = newStatus("SCHEDULED")
	StatusCompleted = newStatus("COMPLETED")
	StatusCancelled = newStatus("CANCELLED")
	StatusNoShow    = newStatus("NO_SHOW")
)

// =============================================================================

var statuses = make(map[string]Status)

// Status represents the state of an appointment.
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

// Holds reports whether an appointment in this status keeps the staff
// member's time booked.
func (s Status) Holds() bool {
	return s == StatusScheduled || s == StatusCompleted
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
