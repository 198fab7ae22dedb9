package reservationbus

import "time"

// QueryFilter holds the available fields a query can be filtered on.
// From and To select stays that overlap the window.
type QueryFilter struct {
	RoomNumber *string
	Status     *Status
	GuestName  *string
	From       *time.Time
	To         *time.Time
}
