package reservationbus

import "github.com/jcpaschoal/vertical-suite/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByCheckIn, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID         = "reservation_id"
	OrderByCheckIn    = "check_in"
	OrderByCheckOut   = "check_out"
	OrderByRoomNumber = "room_number"
	OrderByGuestName  = "guest_name"
	OrderByStatus     = "status"
)
