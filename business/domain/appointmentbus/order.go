package appointmentbus

import "github.com/jcpaschoal/vertical-suite/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByStartsAt, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID         = "appointment_id"
	OrderByStartsAt   = "starts_at"
	OrderByStaffName  = "staff_name"
	OrderByClientName = "client_name"
	OrderByStatus     = "status"
)
