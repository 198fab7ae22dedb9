package tenantbus

import "github.com/jcpaschoal/vertical-suite/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID          = "tenant_id"
	OrderByName        = "name"
	OrderByCode        = "code"
	OrderByVertical    = "vertical"
	OrderByDateCreated = "created_at"
)
