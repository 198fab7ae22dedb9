package reservationapp

import "github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"

var orderByFields = map[string]string{
	"reservation_id": reservationbus.OrderByID,
	"checkIn":        reservationbus.OrderByCheckIn,
	"checkOut":       reservationbus.OrderByCheckOut,
	"roomNumber":     reservationbus.OrderByRoomNumber,
	"guestName":      reservationbus.OrderByGuestName,
	"status":         reservationbus.OrderByStatus,
}
