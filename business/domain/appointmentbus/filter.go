package appointmentbus

import "time"

// QueryFilter holds the available fields a query can be filtered on.
// From and To bound the start time.
type QueryFilter struct {
	StaffName *string
	Status    *Status
	From      *time.Time
	To        *time.Time
}
