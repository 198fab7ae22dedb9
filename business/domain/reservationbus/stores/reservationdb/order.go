package reservationdb

import "github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"

var orderByFields = map[string]string{
	reservationbus.OrderByID:         "reservation_id",
	reservationbus.OrderByCheckIn:    "check_in",
	reservationbus.OrderByCheckOut:   "check_out",
	reservationbus.OrderByRoomNumber: "room_number",
	reservationbus.OrderByGuestName:  "guest_name",
	reservationbus.OrderByStatus:     "status",
}
