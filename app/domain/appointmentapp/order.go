package appointmentapp

import "github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"

var orderByFields = map[string]string{
	"appointment_id": appointmentbus.OrderByID,
	"startsAt":       appointmentbus.OrderByStartsAt,
	"staffName":      appointmentbus.OrderByStaffName,
	"clientName":     appointmentbus.OrderByClientName,
	"status":         appointmentbus.OrderByStatus,
}
