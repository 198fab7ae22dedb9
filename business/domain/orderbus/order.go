package orderbus

import "github.com/jcpaschoal/vertical-suite/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByDateCreated, order.DESC)

// Set of fields that the results can be ordered by.
const (
	OrderByID          = "order_id"
	OrderByTableNumber = "table_number"
	OrderByStatus      = "status"
	OrderByDateCreated = "created_at"
)
