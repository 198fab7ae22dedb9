package appointmentdb

import "github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"

var orderByFields = map[string]string{
	appointmentbus.OrderByID:         "appointment_id",
	appointmentbus.OrderByStartsAt:   "starts_at",
	appointmentbus.OrderByStaffName:  "staff_name",
	appointmentbus.OrderByClientName: "client_name",
	appointmentbus.OrderByStatus:     "status",
}
